package infra

import (
	"github.com/m-mizutani/dsfetch/pkg/infra/kaggle"
)

type Clients struct {
	kaggleClient kaggle.Client
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		kaggleClient: kaggle.New("kaggle"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Kaggle() kaggle.Client {
	return x.kaggleClient
}

func WithKaggle(client kaggle.Client) Option {
	return func(x *Clients) {
		x.kaggleClient = client
	}
}
