package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seuusuario/servebox/internal/app"
	"github.com/seuusuario/servebox/internal/handler"
	"github.com/seuusuario/servebox/internal/settings"
)

var Version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("servebox %s\n", Version)
		return
	}
	runServer(os.Args[1:])
}

func runServer(args []string) {
	st, err := settings.New(args)
	if err != nil {
		log.Fatalf("%s (%v)", app.FriendlyMessage(err), err)
	}

	a, err := app.New(st)
	if err != nil {
		log.Fatal(err)
	}

	threads, err := st.Threads()
	if err != nil {
		fatal(a, err)
	}
	lifetime, err := st.Lifetime()
	if err != nil {
		fatal(a, err)
	}
	maxLatency, err := st.MaxLatency()
	if err != nil {
		fatal(a, err)
	}
	ln, err := st.Socket()
	if err != nil {
		fatal(a, err)
	}

	h := handler.New(a, threads, maxLatency)
	srv := &http.Server{Handler: h.Routes()}

	go func() {
		a.Logger.Info("server started",
			"addr", ln.Addr().String(),
			"threads", threads,
			"daemon", st.IsDaemon(),
			"hit_refresh", st.HitRefresh())
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if lifetime == settings.Unbounded {
		<-quit
	} else {
		select {
		case <-quit:
		case <-time.After(lifetime):
			a.Logger.Info("lifetime expired", "lifetime", lifetime)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Error("shutdown error", "err", err)
	}
}

func fatal(a *app.App, err error) {
	a.Logger.Error("startup failed", "err", err)
	log.Fatalf("%s (%v)", app.FriendlyMessage(err), err)
}
