// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// StartHealthEndpoint serves GET /health on the given port. The endpoint
// reports liveness only; swap progress is read through the API's status
// surface.
func StartHealthEndpoint(port uint16) {
	router := http.NewServeMux()
	router.HandleFunc("/health", handleHealth)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadTimeout:       time.Second * 10,
		WriteTimeout:      time.Second * 10,
		IdleTimeout:       time.Second * 30,
		ReadHeaderTimeout: time.Second * 2,
	}

	log.Info().Msgf("Serving health endpoint on port %d", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Err(err).Msgf("Health server stopped")
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
