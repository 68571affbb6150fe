package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
	"github.com/m04kA/DriveTail-Dashboard/internal/usecase/create_slot_batch"
	"github.com/m04kA/DriveTail-Dashboard/pkg/logger"
)

const (
	statusesJSON = `[{"id":1,"nombre":"Abierto"},{"id":2,"nombre":"En progreso"},{"id":3,"nombre":"Cerrado"}]`
	ticketsJSON  = `[
		{"id":10,"nombre":"Cambio de aceite","id_servicio":1,"id_estado":1,"estado":{"id":1,"nombre":"Abierto"},"user":{"id":"u1","name":"Ana","email":"ana@drivetail.io"}},
		{"id":11,"nombre":"Revision de frenos","id_servicio":1,"id_estado":2,"estado":{"id":2,"nombre":"En progreso"}}
	]`
)

type fakeBackend struct {
	mu          sync.Mutex
	patchStatus int
	patches     []string
	batches     []string
	auth        []string
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/estado-ticket", func(w http.ResponseWriter, r *http.Request) {
		f.track(r, nil)
		_, _ = io.WriteString(w, statusesJSON)
	})
	mux.HandleFunc("/api/ticket", func(w http.ResponseWriter, r *http.Request) {
		f.track(r, nil)
		_, _ = io.WriteString(w, ticketsJSON)
	})
	mux.HandleFunc("/api/ticket/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.track(r, &f.patches, r.URL.Path+" "+string(body))
		if f.patchStatus != 0 {
			w.WriteHeader(f.patchStatus)
			_, _ = io.WriteString(w, `{"message":"boom"}`)
			return
		}
		_, _ = io.WriteString(w, `{}`)
	})
	mux.HandleFunc("/api/slot.batch", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.track(r, &f.batches, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"count":4}`)
	})
	return mux
}

func (f *fakeBackend) track(r *http.Request, list *[]string, entry ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth = append(f.auth, r.Header.Get("Authorization"))
	if list != nil {
		*list = append(*list, entry...)
	}
}

func newTestContext(t *testing.T, fb *fakeBackend, token string) (*Context, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	return &Context{
		Client: backend.NewClient(srv.URL, time.Second, "", nil, logger.NewNop()),
		Token:  token,
		Out:    out,
		Logger: logger.NewNop(),
	}, out
}

func TestBoardCmd_PrintsColumns(t *testing.T) {
	fb := &fakeBackend{}
	ctx, out := newTestContext(t, fb, "tok")

	require.NoError(t, (&BoardCmd{}).Run(ctx))

	assert.Equal(t,
		"Abierto (#1) - 1\n"+
			"  #10 Cambio de aceite [Ana]\n"+
			"En progreso (#2) - 1\n"+
			"  #11 Revision de frenos\n",
		out.String())
	for _, h := range fb.auth {
		assert.Equal(t, "Bearer tok", h)
	}
}

func TestBoardCmd_ShowEmpty(t *testing.T) {
	ctx, out := newTestContext(t, &fakeBackend{}, "tok")

	require.NoError(t, (&BoardCmd{Empty: true}).Run(ctx))

	assert.Contains(t, out.String(), "Cerrado (#3) - 0\n")
}

func TestBoardCmd_RequiresToken(t *testing.T) {
	ctx, _ := newTestContext(t, &fakeBackend{}, "")

	err := (&BoardCmd{}).Run(ctx)

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestMoveCmd_Committed(t *testing.T) {
	fb := &fakeBackend{}
	ctx, out := newTestContext(t, fb, "tok")

	err := (&MoveCmd{Ticket: 10, Status: 3, Via: []int64{2}}).Run(ctx)

	require.NoError(t, err)
	require.Len(t, fb.patches, 1)
	assert.Equal(t, `/api/ticket/10 {"id_estado":3}`, fb.patches[0])
	assert.Contains(t, out.String(), "✓ Estado del ticket actualizado\n")
	assert.Contains(t, out.String(), "Ticket #10 moved to status #3\n")
}

func TestMoveCmd_BackToOriginalColumnSendsNothing(t *testing.T) {
	fb := &fakeBackend{}
	ctx, out := newTestContext(t, fb, "tok")

	err := (&MoveCmd{Ticket: 10, Status: 1, Via: []int64{2, 3}}).Run(ctx)

	require.NoError(t, err)
	assert.Empty(t, fb.patches)
	assert.Equal(t, "Ticket #10 already in status #1\n", out.String())
}

func TestMoveCmd_Reverted(t *testing.T) {
	fb := &fakeBackend{patchStatus: http.StatusInternalServerError}
	ctx, out := newTestContext(t, fb, "tok")

	err := (&MoveCmd{Ticket: 11, Status: 3}).Run(ctx)

	assert.ErrorIs(t, err, ErrMoveReverted)
	assert.Contains(t, out.String(), "✗ No se pudo actualizar el estado del ticket\n")
}

func TestMoveCmd_UnknownTicket(t *testing.T) {
	fb := &fakeBackend{}
	ctx, _ := newTestContext(t, fb, "tok")

	err := (&MoveCmd{Ticket: 99, Status: 2}).Run(ctx)

	assert.Error(t, err)
	assert.Empty(t, fb.patches)
}

func TestSlotsBatchCmd_DryRun(t *testing.T) {
	fb := &fakeBackend{}
	ctx, out := newTestContext(t, fb, "")

	cmd := &SlotsBatchCmd{From: "2025-03-10", To: "2025-03-11", Start: "09:00", End: "10:00", Minutes: 30, DryRun: true}
	require.NoError(t, cmd.Run(ctx))

	assert.Empty(t, fb.batches)
	assert.Equal(t,
		"inicio=2025-03-10T09:00:00 fin=2025-03-11T10:00:00 minutes=30\n"+
			"2 day(s), 4 slot(s) expected\n"+
			"  2025-03-10 09:00 - 09:30\n"+
			"  2025-03-10 09:30 - 10:00\n"+
			"  2025-03-11 09:00 - 09:30\n"+
			"  2025-03-11 09:30 - 10:00\n",
		out.String())
}

func TestSlotsBatchCmd_Submit(t *testing.T) {
	fb := &fakeBackend{}
	ctx, out := newTestContext(t, fb, "tok")

	cmd := &SlotsBatchCmd{From: "2025-03-10", To: "2025-03-11", Start: "09:00", End: "10:00", Minutes: 30}
	require.NoError(t, cmd.Run(ctx))

	require.Len(t, fb.batches, 1)
	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(fb.batches[0]), &sent))
	assert.Equal(t, "2025-03-10T09:00:00", sent["inicio"])
	assert.Equal(t, "2025-03-11T10:00:00", sent["fin"])
	assert.Equal(t, float64(30), sent["minutes"])
	assert.Contains(t, out.String(), "Batch accepted by backend\n")
}

func TestSlotsBatchCmd_Invalid(t *testing.T) {
	fb := &fakeBackend{}
	ctx, _ := newTestContext(t, fb, "tok")

	cmd := &SlotsBatchCmd{From: "2025-03-10", To: "2025-03-10", Start: "18:00", End: "09:00", Minutes: 30}
	err := cmd.Run(ctx)

	assert.ErrorIs(t, err, create_slot_batch.ErrValidation)
	assert.Empty(t, fb.batches)
}

func TestCLI_ParsesFlags(t *testing.T) {
	t.Setenv("DRIVETAIL_TOKEN", "env-token")

	var root CLI
	parser, err := kong.New(&root, kong.Name("boardctl"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{
		"--backend-url", "http://backend:3001",
		"slots", "batch",
		"--from", "2025-03-10", "--to", "2025-03-12",
		"--start", "08:00", "--end", "12:00",
		"--minutes", "45", "--dry-run",
	})
	require.NoError(t, err)

	assert.Equal(t, "slots batch", kctx.Command())
	assert.Equal(t, "http://backend:3001", root.BackendURL)
	assert.Equal(t, "env-token", root.Token)
	assert.Equal(t, 10*time.Second, root.Timeout)
	assert.Equal(t, 45, root.Slots.Batch.Minutes)
	assert.True(t, root.Slots.Batch.DryRun)
}

func TestCLI_MoveArgs(t *testing.T) {
	var root CLI
	parser, err := kong.New(&root, kong.Name("boardctl"))
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"move", "10", "3", "--via", "2,4"})
	require.NoError(t, err)

	assert.Equal(t, "move <ticket> <status>", kctx.Command())
	assert.Equal(t, int64(10), root.Move.Ticket)
	assert.Equal(t, int64(3), root.Move.Status)
	assert.Equal(t, []int64{2, 4}, root.Move.Via)
}
