package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"eindr-intent-engine/internal/intent/classifier"
	intentHTTP "eindr-intent-engine/internal/intent/delivery/http"
	intentRepo "eindr-intent-engine/internal/intent/repository/postgre"
	"eindr-intent-engine/internal/intent/segmenter"
	intentUC "eindr-intent-engine/internal/intent/usecase"
	"eindr-intent-engine/internal/middleware"
	"eindr-intent-engine/pkg/timeparse"
)

// setupIntentDomain initializes the intent domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   store := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, ..., store)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	store := intentRepo.New(srv.db, srv.l)

	// 2. UseCase
	resolver, err := timeparse.NewResolver(srv.timezone)
	if err != nil {
		return err
	}
	uc := intentUC.New(srv.l, segmenter.New(), classifier.New(), store, resolver)

	// 3. HTTP Handler
	h := intentHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/intents/*
	intentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}
