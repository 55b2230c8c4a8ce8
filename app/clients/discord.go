package clients

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"GoHumorAI/app/analysis"
	"GoHumorAI/app/utils"
)

const (
	commandName   = "analyzejoke"
	prefixCommand = "!analyze"

	defaultTriggerEmoji = "🤡"
	workingEmoji        = "🔍"

	embedColor       = 0x097969
	originalFieldMax = 200
)

var _ Interface = &DiscordClient{}

type DiscordClient struct {
	Client
	session      *discordgo.Session
	triggerEmoji string
	limiter      *rate.Limiter
}

func NewDiscordClient() *DiscordClient {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil
	}
	return newDiscordClient(token, os.Getenv("TRIGGER_EMOJI"))
}

func NewDiscordClientFromConfig(cfg map[string]string) (*DiscordClient, error) {
	token := cfg["token"]
	if token == "" {
		token = os.Getenv("DISCORD_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("discord token is not configured")
	}
	return newDiscordClient(token, cfg["trigger_emoji"]), nil
}

func newDiscordClient(token, triggerEmoji string) *DiscordClient {
	if triggerEmoji == "" {
		triggerEmoji = defaultTriggerEmoji
	}

	session, _ := discordgo.New("Bot " + token)
	dc := &DiscordClient{
		session:      session,
		triggerEmoji: triggerEmoji,
		// Reaction spam must not stampede the analysis backends.
		limiter: rate.NewLimiter(rate.Every(3*time.Second), 2),
	}

	session.AddHandler(dc.onReady)
	session.AddHandler(dc.onMessageCreate)
	session.AddHandler(dc.onInteractionCreate)
	session.AddHandler(dc.onMessageReactionAdd)
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	return dc
}

func (c *DiscordClient) Subscribe(d *analysis.Dispatcher) {
	c.dispatcher = d
	c.Open()
}

func (c *DiscordClient) Open() error {
	if err := c.session.Open(); err != nil {
		return err
	}
	log.Println("Discord client started. Listening for commands and reactions...")
	return nil
}

func (c *DiscordClient) Close() error {
	return c.session.Close()
}

func (c *DiscordClient) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	_, err := s.ApplicationCommandCreate(s.State.User.ID, "", &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Analyze the humor of a joke or an image URL",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "joke",
				Description: "Joke text or an image URL to analyze",
				Required:    true,
			},
		},
	})
	if err != nil {
		log.Printf("⚠️ Error registering /%s command: %v", commandName, err)
		return
	}
	log.Printf("✅ Registered /%s as %s", commandName, s.State.User.Username)
}

func (c *DiscordClient) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != commandName {
		log.Printf("Unhandled command: %s", data.Name)
		return
	}
	if len(data.Options) == 0 {
		c.respondInteraction(s, i, "Usage: /"+commandName+" <joke or image URL>")
		return
	}

	c.respondInteraction(s, i, workingEmoji+" Analyzing the joke...")

	req := analysis.NewRequest(data.Options[0].StringValue())
	result := c.dispatcher.Analyze(context.Background(), req)

	params := &discordgo.WebhookParams{}
	if result.Succeeded {
		params.Embeds = []*discordgo.MessageEmbed{analysisEmbed("🤖 Joke Analysis Report", req, result)}
	} else {
		params.Content = result.ErrorDetail
	}
	if _, err := s.FollowupMessageCreate(i.Interaction, true, params); err != nil {
		log.Printf("⚠️ Error sending followup for /%s: %v", commandName, err)
	}
}

func (c *DiscordClient) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}
	if !strings.HasPrefix(m.Content, prefixCommand) {
		return
	}

	joke := strings.TrimSpace(strings.TrimPrefix(m.Content, prefixCommand))
	if joke == "" {
		c.sendMessage(s, m.ChannelID, "Usage: "+prefixCommand+" <joke or image URL>")
		return
	}

	c.sendMessage(s, m.ChannelID, workingEmoji+" Analyzing the joke...")

	req := analysis.NewRequest(joke)
	result := c.dispatcher.Analyze(context.Background(), req)
	if !result.Succeeded {
		c.sendMessage(s, m.ChannelID, result.ErrorDetail)
		return
	}
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, analysisEmbed("🤖 Joke Analysis Report", req, result)); err != nil {
		log.Printf("⚠️ Error sending analysis embed: %v", err)
	}
}

func (c *DiscordClient) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.UserID == s.State.User.ID {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}
	if r.Emoji.Name != c.triggerEmoji {
		return
	}
	if !c.limiter.Allow() {
		log.Printf("⚠️ Reaction trigger rate limited on message %s", r.MessageID)
		return
	}

	message, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("⚠️ Error fetching message %s: %v", r.MessageID, err)
		return
	}
	if message.Content == "" || (message.Author != nil && message.Author.Bot) {
		return
	}

	if err = s.MessageReactionAdd(r.ChannelID, r.MessageID, workingEmoji); err != nil {
		log.Printf("⚠️ Error adding %s reaction: %v", workingEmoji, err)
	}

	req := analysis.NewRequest(message.Content)
	result := c.dispatcher.Analyze(context.Background(), req)

	if result.Succeeded {
		embed := analysisEmbed("🤖 Automatic Humor Analysis", req, result)
		if r.Member != nil && r.Member.User != nil {
			embed.Author = &discordgo.MessageEmbedAuthor{
				Name:    r.Member.User.Username + " requested an analysis",
				IconURL: r.Member.User.AvatarURL(""),
			}
		}
		c.replyTo(s, message, "", embed)
	} else {
		c.replyTo(s, message, result.ErrorDetail, nil)
	}

	if err = s.MessageReactionRemove(r.ChannelID, r.MessageID, workingEmoji, "@me"); err != nil {
		log.Printf("⚠️ Error removing %s reaction: %v", workingEmoji, err)
	}
}

func (c *DiscordClient) respondInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Printf("⚠️ Error responding to slash command: %v", err)
	}
}

func (c *DiscordClient) replyTo(s *discordgo.Session, m *discordgo.Message, content string, embed *discordgo.MessageEmbed) {
	send := &discordgo.MessageSend{
		Content:   content,
		Reference: m.Reference(),
	}
	if embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{embed}
	}
	if _, err := s.ChannelMessageSendComplex(m.ChannelID, send); err != nil {
		log.Printf("⚠️ Error replying to message %s: %v", m.ID, err)
	}
}

func (c *DiscordClient) sendMessage(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("⚠️ Error sending message: %v", err)
	}
}

func analysisEmbed(title string, req analysis.Request, result analysis.Result) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: result.Text,
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Humor analysis by GoHumorAI"},
	}
	if req.Kind == analysis.KindImage {
		embed.Image = &discordgo.MessageEmbedImage{URL: req.Content}
	} else {
		embed.Fields = []*discordgo.MessageEmbedField{
			{
				Name:  "Original joke",
				Value: "```" + utils.EllipsizeRunes(req.Content, originalFieldMax) + "```",
			},
		}
	}
	return embed
}
