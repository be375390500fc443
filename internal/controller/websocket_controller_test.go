package controller

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/fasthttp/websocket"

	"github.com/lgbarn/minimax-chess-go/internal/output"
	"github.com/lgbarn/minimax-chess-go/internal/service"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
	"github.com/lgbarn/minimax-chess-go/internal/ws"
)

// listen serves app on a free loopback port until the test ends.
func listen(t *testing.T) (string, *service.GameService) {
	t.Helper()
	app, svc := newTestApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return ln.Addr().String(), svc
}

// readState reads the next message and decodes it as a game state.
func readState(t *testing.T, conn *websocket.Conn) *output.State {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	var msg ws.Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	testutil.AssertEqual(t, msg.Type, ws.MessageTypeGameState)
	return decodeState(t, msg.Payload)
}

func TestHandleConnection_MoveIsPushed(t *testing.T) {
	addr, svc := listen(t)
	created, err := svc.Create(context.Background(), service.CreateRequest{})
	testutil.AssertNoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/ws/games/"+created.ID, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	initial := readState(t, conn)
	testutil.AssertEqual(t, initial.ID, created.ID)
	testutil.AssertEqual(t, len(initial.History), 0)

	testutil.AssertNoError(t, conn.WriteJSON(mustMessage(t, ws.MessageTypeMove, ws.MovePayload{Move: "e2e4"})))

	human := readState(t, conn)
	testutil.AssertEqual(t, human.History, []string{"E2E4"})
	testutil.AssertEqual(t, human.ToMove, "black")

	reply := readState(t, conn)
	testutil.AssertEqual(t, reply.History, []string{"E2E4", "B8C6"})
	testutil.AssertEqual(t, reply.ToMove, "white")
}

func TestHandleConnection_UnknownGame(t *testing.T) {
	addr, _ := listen(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/ws/games/nope", nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	testutil.AssertNoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg ws.Message
	testutil.AssertNoError(t, conn.ReadJSON(&msg))
	testutil.AssertEqual(t, msg.Type, ws.MessageTypeError)
	var p ws.ErrorPayload
	testutil.AssertNoError(t, json.Unmarshal(msg.Payload, &p))
	testutil.AssertContains(t, p.Error, "game not found")
}
