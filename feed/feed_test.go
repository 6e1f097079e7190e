package feed

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/lixenwraith/artillery/physics"
	"github.com/lixenwraith/artillery/vmath"
)

func ptr(v float64) *float64 { return &v }

func TestHandleMatchesIntegrate(t *testing.T) {
	req := &Request{
		Start:    Vec{0, 1, 0},
		Velocity: Vec{10, 5, 0},
		Params:   &ParamsMessage{Mass: ptr(1), Radius: ptr(0.1), DragCoefficient: ptr(0.47), AirDensity: ptr(1.225)},
		Steps:    5,
		TimeStep: 0.02,
	}

	resp := Handle(req, 100)
	if resp.Error != "" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
	if resp.ID == "" || resp.Mode != "drag" {
		t.Errorf("id=%q mode=%q", resp.ID, resp.Mode)
	}

	want := physics.Integrate(vmath.Vec3F{Y: 1}, vmath.Vec3F{X: 10, Y: 5},
		physics.NewParamsFrom(1, 0.1, 0.47, 1.225, vmath.Vec3F{}), vmath.Vec3F{Y: -9.81}, 5, 0.02)
	if len(resp.Points) != len(want) {
		t.Fatalf("points = %d, want %d", len(resp.Points), len(want))
	}
	for i, p := range want {
		if resp.Points[i] != (Vec{p.X, p.Y, p.Z}) {
			t.Errorf("point %d = %v, want %v", i, resp.Points[i], p)
		}
	}
}

func TestHandleDefaultsAndErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		points  int
		mode    string
		wantErr bool
	}{
		{"Defaults", Request{Velocity: Vec{5, 5, 0}}, 60, "drag", false},
		{"Vacuum", Request{Velocity: Vec{5, 5, 0}, Mode: "vacuum", Steps: 10}, 10, "vacuum", false},
		{"StepsClamped", Request{Steps: -4}, 2, "drag", false},
		{"TooManySteps", Request{Steps: 101}, 0, "", true},
		{"UnknownMode", Request{Mode: "warp"}, 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Handle(&tt.req, 100)
			if (resp.Error != "") != tt.wantErr {
				t.Fatalf("error = %q, wantErr %v", resp.Error, tt.wantErr)
			}
			if len(resp.Points) != tt.points || resp.Mode != tt.mode {
				t.Errorf("points=%d mode=%q, want %d %q", len(resp.Points), resp.Mode, tt.points, tt.mode)
			}
		})
	}
}

func TestRequestPartialParams(t *testing.T) {
	req := Request{Params: &ParamsMessage{Mass: ptr(-3), Wind: Vec{1, 0, 0}}}
	p := req.params()
	def := physics.NewParams()

	if p.Mass() != 1e-4 {
		t.Errorf("mass = %v, want floor", p.Mass())
	}
	if p.Radius() != def.Radius() || p.DragCoefficient() != def.DragCoefficient() {
		t.Error("omitted fields should take defaults")
	}
	if p.Wind() != (vmath.Vec3F{X: 1}) {
		t.Errorf("wind = %v", p.Wind())
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.CloseNow() })
	return conn
}

func TestHandlerRoundTrip(t *testing.T) {
	srv := httptest.NewServer(NewHandler(DefaultConfig()))
	defer srv.Close()
	conn := dial(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ids := map[string]bool{}
	for _, mode := range []string{"drag", "vacuum"} {
		if err := wsjson.Write(ctx, conn, Request{Velocity: Vec{10, 10, 0}, Steps: 8, Mode: mode}); err != nil {
			t.Fatalf("write: %v", err)
		}
		var resp Response
		if err := wsjson.Read(ctx, conn, &resp); err != nil {
			t.Fatalf("read: %v", err)
		}
		if resp.Mode != mode || len(resp.Points) != 8 {
			t.Errorf("mode=%q points=%d", resp.Mode, len(resp.Points))
		}
		ids[resp.ID] = true
	}
	if len(ids) != 2 {
		t.Error("expected distinct response ids")
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

func TestHandlerRejectsMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(NewHandler(DefaultConfig()))
	defer srv.Close()
	conn := dial(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.Write(ctx, websocket.MessageText, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := conn.Read(ctx)
	if got := websocket.CloseStatus(err); got != websocket.StatusInvalidFramePayloadData {
		t.Errorf("close status = %v (err %v), want StatusInvalidFramePayloadData", got, err)
	}
}

func TestServerServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := NewServer(DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
