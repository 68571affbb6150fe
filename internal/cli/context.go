package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
	"github.com/m04kA/DriveTail-Dashboard/pkg/logger"
)

// ErrNoToken токен администратора не передан
var ErrNoToken = errors.New("no admin token: pass --token or set DRIVETAIL_TOKEN")

// Globals общие флаги boardctl
type Globals struct {
	BackendURL string        `help:"DriveTail backend base URL." env:"DRIVETAIL_BACKEND_URL" default:"http://localhost:3001"`
	Token      string        `help:"Admin bearer token." env:"DRIVETAIL_TOKEN"`
	Timeout    time.Duration `help:"Backend request timeout." default:"10s"`
	LogLevel   string        `help:"Log level (debug, info, warn, error)." enum:"debug,info,warn,error" default:"warn"`
	LogFile    string        `help:"Log destination (file path, stdout or stderr)." default:"stderr"`
}

// Context зависимости, общие для команд
type Context struct {
	Client *backend.Client
	Token  string
	Out    io.Writer
	Logger *logger.Logger
}

// NewContext собирает зависимости команд из глобальных флагов
func NewContext(g Globals, out io.Writer) (*Context, error) {
	log, err := logger.New(g.LogFile, g.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &Context{
		Client: backend.NewClient(g.BackendURL, g.Timeout, "", nil, log),
		Token:  g.Token,
		Out:    out,
		Logger: log,
	}, nil
}

func (c *Context) requireToken() error {
	if c.Token == "" {
		return ErrNoToken
	}
	return nil
}

func (c *Context) printf(format string, v ...interface{}) {
	fmt.Fprintf(c.Out, format, v...)
}
