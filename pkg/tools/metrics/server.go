// Copyright (c) 2026 Cisco and/or its affiliates.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
)

const shutdownTimeout = time.Second

// ListenAndServe serves gatherer on listenOn under /metrics until ctx is done.
// The returned channel gets at most one error and is closed when the server stops.
func ListenAndServe(ctx context.Context, listenOn string, headerTimeout time.Duration, gatherer prometheus.Gatherer) <-chan error {
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              listenOn,
		Handler:           mux,
		ReadHeaderTimeout: headerTimeout,
	}

	go func() {
		defer close(errCh)
		log.FromContext(ctx).Infof("Start metrics server on %s", listenOn)

		serveErr := make(chan error, 1)
		go func() {
			serveErr <- server.ListenAndServe()
		}()

		select {
		case err := <-serveErr:
			if !errors.Is(err, http.ErrServerClosed) {
				errCh <- errors.Wrapf(err, "failed to ListenAndServe on metrics server %s", listenOn)
			}
			return
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			errCh <- errors.Wrap(err, "failed to shutdown metrics server")
		}
		<-serveErr
	}()
	return errCh
}
