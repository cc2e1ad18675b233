package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"trender/internal/scene"
	"trender/internal/server"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	addr := flag.String("addr", defaultAddr, "listen address (PORT env overrides)")
	hostKey := flag.String("hostkey", hostKeyPath, "ed25519 host key file, generated if missing")
	sceneFile := flag.String("scene", "", "scene file to play (default: built-in scene)")
	flag.Parse()

	if err := ensureHostKey(*hostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	sc := scene.DefaultScene()
	if *sceneFile != "" {
		loaded, err := scene.Load(*sceneFile)
		if err != nil {
			log.Fatalf("Scene error: %v", err)
		}
		sc = loaded
	}
	log.Printf("Scene loaded: %s (%d steps)", sc.Name, len(sc.Steps))

	listenAddr := *addr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}
	srv := server.NewSSHServer(listenAddr, *hostKey, sc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down")
		return srv.Close()
	})

	log.Printf("Starting trender server, connect with: ssh -t -p %s you@localhost", portOf(listenAddr))
	if err := g.Wait(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}
