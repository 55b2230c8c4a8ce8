package clients

import (
	"GoHumorAI/app/analysis"
)

type Interface interface {
	Subscribe(*analysis.Dispatcher)
}

type Client struct {
	dispatcher *analysis.Dispatcher
}
