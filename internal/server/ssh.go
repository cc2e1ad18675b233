package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"sync"

	"github.com/gliderlabs/ssh"

	"trender/internal/render"
	"trender/internal/scene"
	"trender/internal/term"
)

// SSHServer plays a scene into every PTY session that connects.
type SSHServer struct {
	addr    string
	hostKey string
	scene   *scene.Scene

	mu     sync.Mutex
	server *ssh.Server
	closed bool
}

// NewSSHServer creates a new SSH server bound to the given address.
func NewSSHServer(addr, hostKey string, sc *scene.Scene) *SSHServer {
	return &SSHServer{
		addr:    addr,
		hostKey: hostKey,
		scene:   sc,
	}
}

// Start begins listening for SSH connections. It blocks until Close is
// called, in which case it returns nil.
func (s *SSHServer) Start() error {
	return s.serve(nil)
}

// Serve accepts SSH connections on l until Close is called.
func (s *SSHServer) Serve(l net.Listener) error {
	return s.serve(l)
}

func (s *SSHServer) serve(l net.Listener) error {
	server := &ssh.Server{
		Addr:    s.addr,
		Handler: s.handleSession,
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		if l != nil {
			l.Close()
		}
		return nil
	}
	s.server = server
	s.mu.Unlock()

	var err error
	if l != nil {
		log.Printf("SSH server listening on %s", l.Addr())
		err = server.Serve(l)
	} else {
		log.Printf("SSH server listening on %s", s.addr)
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Close stops the listener and drops open sessions.
func (s *SSHServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.server == nil {
		return nil
	}
	return s.server.Close()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}
	log.Printf("Viewer connected: %s (%dx%d)", username, ptyReq.Window.Width, ptyReq.Window.Height)
	defer log.Printf("Viewer disconnected: %s", username)

	surface := newSessionSurface(sess, ptyReq.Window.Width, ptyReq.Window.Height)
	go surface.track(winCh)

	canvas := render.NewCanvas(surface.WriterSurface,
		render.WithLogger(log.New(log.Writer(), "["+username+"] ", log.Flags())),
	)

	surface.WriteString(term.EnableAltScreen())
	canvas.HideCursor()
	canvas.Clear()
	defer func() {
		canvas.ShowCursor()
		surface.WriteString(term.DisableAltScreen())
	}()

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	go func() {
		defer cancel()
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			if quitRequested(buf[:n]) {
				return
			}
		}
	}()

	if err := scene.Play(ctx, canvas, s.scene); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Scene error for %s: %v", username, err)
	}
	if err := surface.Err(); err != nil {
		log.Printf("Write error for %s: %v", username, err)
		return
	}

	// Keep the picture up until the viewer quits.
	<-ctx.Done()
}

// sessionSurface is a WriterSurface over an SSH channel, sized by the PTY
// window and kept current by window-change requests.
type sessionSurface struct {
	*term.WriterSurface

	mu   sync.Mutex
	w, h int
}

func newSessionSurface(out io.Writer, w, h int) *sessionSurface {
	ss := &sessionSurface{w: w, h: h}
	ss.WriterSurface = term.NewWriterSurface(out, ss.size)
	return ss
}

func (ss *sessionSurface) size() (int, int, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.w <= 0 || ss.h <= 0 {
		return 0, 0, fmt.Errorf("pty window %dx%d", ss.w, ss.h)
	}
	return ss.w, ss.h, nil
}

func (ss *sessionSurface) resize(w, h int) {
	ss.mu.Lock()
	ss.w, ss.h = w, h
	ss.mu.Unlock()
}

func (ss *sessionSurface) track(winCh <-chan ssh.Window) {
	for win := range winCh {
		ss.resize(win.Width, win.Height)
	}
}

// quitRequested reports whether data holds q, Q or Ctrl-C.
func quitRequested(data []byte) bool {
	for _, b := range data {
		switch b {
		case 'q', 'Q', 3:
			return true
		}
	}
	return false
}
