package main

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	twitchClient "twitch_helix_client/internal/client/twitch-client"
	"twitch_helix_client/internal/config"
	twitchHandler "twitch_helix_client/internal/handlers/twitch"
	"twitch_helix_client/internal/metrics"
	"twitch_helix_client/internal/reporter"
	"twitch_helix_client/internal/router"
	twitchService "twitch_helix_client/internal/service/twitch"
)

func main() {
	cfg := config.Load()

	if err := cfg.ConfigureLogging(); err != nil {
		logrus.Fatalf("cannot configure logging: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	wg := new(sync.WaitGroup)

	wg.Add(1)
	go func() {
		defer wg.Done()

		srv := &http.Server{
			Handler:      router.NewWebRouter(reg, cfg.CORSAllowedOrigins...),
			Addr:         ":" + cfg.Port,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
		}

		logrus.Fatal(listenAndServe(srv, func(net.Addr) {
			logrus.Infof("Server started on port %s", cfg.Port)
		}))
	}()

	if cfg.DebugAddr != "" {
		clientMetrics := metrics.New(reg)

		twitch := twitchClient.NewTwitchClient(
			twitchClient.WithHosts(cfg.TwitchIDHost, cfg.TwitchAPIHost),
			twitchClient.WithMetrics(clientMetrics),
			twitchClient.WithReporter(reporter.NewLogReporter(logrus.StandardLogger(), clientMetrics)),
		)

		twh := twitchHandler.NewTwitchHandler(twitchService.NewService(twitch))

		wg.Add(1)
		go func() {
			defer wg.Done()

			srv := &http.Server{
				Handler:      router.NewDebugRouter(twh),
				Addr:         cfg.DebugAddr,
				WriteTimeout: 10 * time.Second,
				ReadTimeout:  5 * time.Second,
			}

			logrus.Fatal(listenAndServe(srv, func(addr net.Addr) {
				logrus.Infof("debug server started on %s", addr)
			}))
		}()
	}

	wg.Wait()
}
