package handlers

import (
	"digitalstore/internal/config"
	"digitalstore/internal/repos"
	"digitalstore/internal/services"
)

type Deps struct {
	Config         config.Config
	SearchHandler  *SearchHandler
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	AdHandler      *AdHandler
	AdminHandler   *AdminHandler
}

// Store is the persistence the handlers need: the KV itself plus key listing
// for the admin storage dump.
type Store interface {
	repos.KV
	repos.KeyLister
}

func NewDeps(store Store, cfg config.Config) *Deps {
	sf := services.NewStorefront(store)
	return &Deps{
		Config:         cfg,
		SearchHandler:  &SearchHandler{Store: sf},
		ProductHandler: &ProductHandler{Catalog: sf.Catalog},
		CartHandler:    &CartHandler{Store: sf},
		AdHandler:      &AdHandler{Store: sf},
		AdminHandler:   &AdminHandler{Store: sf, KV: store},
	}
}
