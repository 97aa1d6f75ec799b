package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/hyphalabs/crosschain-resolver/api/handlers"
)

func Serve(
	ctx context.Context,
	addr string,
	swapsHandler *handlers.SwapsHandler,
	commitmentsHandler *handlers.CommitmentsHandler,
) {
	r := mux.NewRouter()
	r.HandleFunc("/v1/swaps", swapsHandler.HandleCreate).Methods("POST")
	r.HandleFunc("/v1/swaps/{orderHash}", swapsHandler.HandleStatus).Methods("GET")
	r.HandleFunc("/v1/swaps/{orderHash}/secrets", swapsHandler.HandleSecret).Methods("POST")
	r.HandleFunc("/v1/swaps/{orderHash}/cancel", swapsHandler.HandleCancel).Methods("POST")
	r.HandleFunc("/v1/commitments", commitmentsHandler.HandleCommit).Methods("POST")
	r.HandleFunc("/v1/commitments/reveal", commitmentsHandler.HandleReveal).Methods("POST")
	r.HandleFunc("/v1/orders/{orderHash}/execute", commitmentsHandler.HandleExecute).Methods("POST")

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
