package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Connect to the hub and stream broadcast frames",
		Long: `watch joins the match as a spectator session and prints every
frame the hub sends until interrupted. Note that the hub counts the
watcher as a player; other clients will see it standing at its spawn
point.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, _, err := websocket.DefaultDialer.Dial(client.WebSocketURL(), nil)
			if err != nil {
				return fmt.Errorf("failed to connect: %w", err)
			}
			defer func() { _ = conn.Close() }()

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)

			frames := make(chan []byte)
			errCh := make(chan error, 1)
			go func() {
				for {
					_, data, err := conn.ReadMessage()
					if err != nil {
						errCh <- err
						return
					}
					frames <- data
				}
			}()

			for {
				select {
				case data := <-frames:
					printFrame(data, cfg.Output)
				case err := <-errCh:
					return fmt.Errorf("connection closed: %w", err)
				case <-interrupt:
					// Best-effort close handshake before dropping the session
					_ = conn.WriteMessage(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
					return nil
				}
			}
		},
	}
}

func printFrame(data []byte, format string) {
	if format == "json" {
		fmt.Println(string(data))
		return
	}

	var env struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		fmt.Printf("?? %s\n", string(data))
		return
	}
	fmt.Printf("%-14s %s\n", env.Type, string(env.Payload))
}
