package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/galacticquest/internal/client/client"
	"github.com/dmitrijs2005/galacticquest/internal/client/config"
	"github.com/dmitrijs2005/galacticquest/internal/filex"
	"github.com/dmitrijs2005/galacticquest/internal/netx"
	"github.com/dmitrijs2005/galacticquest/internal/rpc"
)

// Seams for the export download.
var (
	downloadFn = netx.DownloadPresignedURL
	saveFn     = filex.SaveToSubdDir
)

type App struct {
	config *config.Config
	api    client.Client
	reader *bufio.Reader
	out    io.Writer
	user   *rpc.User
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf(" (%s, %s)", a.user.Username, a.user.Rank)
}

// withTimeout bounds a single command by the configured request timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	fmt.Fprintln(a.out, "Welcome to Galactic Quest CLI (type 'help' for commands)")

	pctx, cancel := a.withTimeout(ctx)
	if err := a.api.Ping(pctx); err != nil {
		fmt.Fprintf(a.out, "Server %s is not reachable yet: %v\n", a.config.ServerEndpointAddr, err)
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
