package answer

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/gofrs/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/nathants/answer/lib"
)

const (
	defaultAddr  = ":8888"
	functionPath = "/.netlify/functions/answer"
	shortPath    = "/answer"
)

func init() {
	lib.Commands["answer-serve"] = answerServe
	lib.Args["answer-serve"] = answerServeArgs{}
}

type answerServeArgs struct {
	Addr     string `arg:"-a,--addr,env:ANSWER_ADDR" help:"listen address, default :8888"`
	Artifact string `arg:"--artifact"`
	Config   string `arg:"-c,--config" help:"yaml config with artifact, addr, region"`
	EnvFile  string `arg:"-e,--env-file" default:".env"`
}

func (answerServeArgs) Description() string {
	return `
serve the answer handler locally

routes any method on /.netlify/functions/answer and /answer

>> answer answer-serve --addr :8888 --config answer.yaml

`
}

func answerServe() {
	var args answerServeArgs
	arg.MustParse(&args)
	if args.EnvFile != "" && lib.Exists(args.EnvFile) {
		err := godotenv.Load(args.EnvFile)
		if err != nil {
			lib.Logger.Fatal("error: ", err)
		}
	}
	conf := &lib.Config{Addr: defaultAddr}
	if args.Config != "" {
		loaded, err := lib.ConfigLoad(args.Config)
		if err != nil {
			lib.Logger.Fatal("error: ", err)
		}
		conf.Merge(loaded)
	}
	conf.Merge(lib.ConfigFromEnv())
	conf.Merge(&lib.Config{Artifact: args.Artifact, Addr: args.Addr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	artifact, err := lib.NewArtifact(ctx, conf)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
	e := newServer(lib.NewHandler(artifact))

	go func() {
		lib.Logger.Printf("listening on %s serving %s\n", conf.Addr, artifact)
		err := e.Start(conf.Addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lib.Logger.Fatal("error: ", err)
		}
	}()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = e.Shutdown(shutdownCtx)
	if err != nil {
		lib.Logger.Fatal("error: ", err)
	}
}

func newServer(h *lib.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(requestLog)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.Any(functionPath, serveAnswer(h))
	e.Any(shortPath, serveAnswer(h))
	return e
}

// serveAnswer returns handler errors to echo, whose default error handler
// answers 500.
func serveAnswer(h *lib.Handler) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp, err := h.Handle(c.Request().Context(), lib.Request{})
		if err != nil {
			return err
		}
		for k, v := range resp.Headers {
			c.Response().Header().Set(k, v)
		}
		return c.Blob(resp.StatusCode, resp.Headers[lib.HeaderContentType], resp.Body)
	}
}

func requestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		id := uuid.Must(uuid.NewV4()).String()
		c.Response().Header().Set(echo.HeaderXRequestID, id)
		err := next(c)
		status := c.Response().Status
		if err != nil {
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			} else {
				status = http.StatusInternalServerError
			}
		}
		lib.Logger.Printf("%s %s %s %d %s\n", id, c.Request().Method, c.Request().URL.Path, status, time.Since(start).Round(time.Microsecond))
		return err
	}
}
