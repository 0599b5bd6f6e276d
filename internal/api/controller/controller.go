package controller

import (
	"github.com/voltplan/loadcalc/internal/pkg/store"
	"github.com/voltplan/loadcalc/internal/service/electrical"
	"github.com/voltplan/loadcalc/internal/service/hvac"
	"github.com/voltplan/loadcalc/internal/service/importer"
)

type Controller struct {
	electrical *electrical.Service
	hvac       *hvac.Service
	importer   *importer.Service
	store      store.Store
}

func NewController(el *electrical.Service, hv *hvac.Service, imp *importer.Service, st store.Store) *Controller {
	return &Controller{electrical: el, hvac: hv, importer: imp, store: st}
}
