package channel

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/kelechidev/hustlebot/internal/bus"
	"github.com/kelechidev/hustlebot/internal/config"
)

//go:embed static
var staticFiles embed.FS

// The browser protocol: the page sends "chat" envelopes; the server
// answers with a "welcome" banner on connect, then each bot reply as a
// run of "fragment" envelopes closed by a "done" envelope, so long
// advisory replies render incrementally instead of landing as one
// block.
const (
	webUIChannelName = "webui"

	wsTypeChat     = "chat"
	wsTypeWelcome  = "welcome"
	wsTypeFragment = "fragment"
	wsTypeDone     = "done"

	wsWriteTimeout = 5 * time.Second

	welcomeText = "👋 Hi! I'm HustleBot. Tell me about yourself and I'll suggest ways to earn as a student - or prefix a question with /security for safety help."
)

type wsEnvelope struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type wsClient struct {
	id   string
	conn *websocket.Conn

	mu sync.Mutex // serializes writes; welcome, replies and reminders can race
}

func (c *wsClient) write(env wsEnvelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), wsWriteTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}

type WebUIChannel struct {
	BaseChannel
	port    int
	server  *http.Server
	clients sync.Map
	nextID  atomic.Int64
}

func NewWebUIChannel(cfg config.WebUIConfig, gwCfg config.GatewayConfig, b *bus.MessageBus) (*WebUIChannel, error) {
	port := gwCfg.Port
	if port == 0 {
		port = config.DefaultPort
	}

	return &WebUIChannel{
		BaseChannel: NewBaseChannel(webUIChannelName, b, cfg.AllowFrom),
		port:        port,
	}, nil
}

func (w *WebUIChannel) Start(ctx context.Context) error {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("embed static fs: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(staticFS)))
	mux.HandleFunc("/ws", w.handleWS)

	w.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", w.port),
		Handler: mux,
	}

	go func() {
		log.Printf("[webui] listening on :%d", w.port)
		if err := w.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[webui] server error: %v", err)
		}
	}()

	return nil
}

func (w *WebUIChannel) handleWS(wr http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(wr, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[webui] websocket accept error: %v", err)
		return
	}

	clientID := fmt.Sprintf("webui-%d", w.nextID.Add(1))
	client := &wsClient{id: clientID, conn: conn}
	w.clients.Store(clientID, client)
	log.Printf("[webui] client connected: %s", clientID)

	defer func() {
		w.clients.Delete(clientID)
		conn.CloseNow()
		log.Printf("[webui] client disconnected: %s", clientID)
	}()

	if err := client.write(wsEnvelope{Type: wsTypeWelcome, Text: welcomeText}); err != nil {
		log.Printf("[webui] welcome to %s failed: %v", clientID, err)
		return
	}

	for {
		_, data, err := conn.Read(r.Context())
		if err != nil {
			return
		}

		var env wsEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}

		text := strings.TrimSpace(env.Text)
		if env.Type != wsTypeChat || text == "" {
			continue
		}

		if !w.IsAllowed(clientID) {
			log.Printf("[webui] rejected message from %s", clientID)
			continue
		}

		w.bus.Inbound <- bus.InboundMessage{
			Channel:   webUIChannelName,
			SenderID:  clientID,
			ChatID:    clientID,
			Content:   text,
			Timestamp: time.Now(),
		}
	}
}

func (w *WebUIChannel) Send(msg bus.OutboundMessage) error {
	if client, ok := w.clients.Load(msg.ChatID); ok {
		return w.deliver(client.(*wsClient), msg.Content)
	}

	// Reminder jobs can outlive the socket that scheduled them; fall
	// back to every connected client.
	w.clients.Range(func(_, value any) bool {
		c := value.(*wsClient)
		if err := w.deliver(c, msg.Content); err != nil {
			log.Printf("[webui] deliver to %s failed: %v", c.id, err)
		}
		return true
	})
	return nil
}

// deliver streams one reply as paragraph fragments followed by a
// terminator.
func (w *WebUIChannel) deliver(c *wsClient, content string) error {
	for _, frag := range splitFragments(content) {
		if err := c.write(wsEnvelope{Type: wsTypeFragment, Text: frag}); err != nil {
			return err
		}
	}
	return c.write(wsEnvelope{Type: wsTypeDone})
}

// splitFragments cuts a reply at paragraph breaks. Concatenating the
// fragments reproduces the input exactly.
func splitFragments(text string) []string {
	var out []string
	for _, part := range strings.SplitAfter(text, "\n\n") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (w *WebUIChannel) Stop() error {
	if w.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := w.server.Shutdown(ctx); err != nil {
			log.Printf("[webui] shutdown error: %v", err)
		}
	}
	w.clients.Range(func(_, value any) bool {
		value.(*wsClient).conn.CloseNow()
		return true
	})
	log.Printf("[webui] stopped")
	return nil
}
