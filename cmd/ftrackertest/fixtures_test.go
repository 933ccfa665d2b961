package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

const (
	startProcessTimeout = time.Second * 10
)

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Require *require.Assertions
	Ctx     context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	if flagBinaryPath == "" {
		t.Skip("-binary-path flag required")
	}

	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	return &Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		Require:    require.New(t),
		Ctx:        ctx,
		t:          t,
	}
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func BinaryPath(e *Env) string {
	return fixenv.Cache(e, flagBinaryPath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", flagBinaryPath)
		if _, err := os.Stat(flagBinaryPath); err != nil {
			return "", err
		}
		return flagBinaryPath, nil
	})
}

func ServerPort(e *Env) int {
	return fixenv.Cache(e, "server-port", nil, func() (int, error) {
		return random.UnusedPort()
	})
}

func ServerAddress(e *Env) string {
	return net.JoinHostPort("localhost", strconv.Itoa(ServerPort(e)))
}

func StartProcess(e *Env, name string, command string, args ...string) *fork.BackgroundProcess {
	cacheKey := append([]string{name, command}, args...)
	return fixenv.CacheWithCleanup(e, cacheKey, nil, func() (*fork.BackgroundProcess, fixenv.FixtureCleanupFunc, error) {
		res := fork.NewBackgroundProcess(e.Ctx, command,
			fork.WithArgs(args...),
			fork.WithEnv(append(os.Environ(), "FTRACKER_LOG_LEVEL=debug")...),
		)

		e.Logf("Запускаю %q: %q %#v", name, command, args)
		if err := res.Start(e.Ctx); err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			e.Logf("Останавливаю %q: %q %#v", name, command, args)
			exitCode, err := res.Stop(syscall.SIGINT, syscall.SIGKILL)
			if err != nil {
				e.Fatalf("Не получилось остановить процесс: %+v", err)
			}
			if exitCode != 0 {
				e.Logf("Ненулевой код возврата: %v", exitCode)
				e.Logf("Получен STDERR лог процесса:\n\n%s", res.Stderr())
			}
		}
		return res, cleanup, nil
	})
}

func StartProcessWhichListenPort(e *Env, address string, name string, command string, args ...string) *fork.BackgroundProcess {
	cacheKey := append([]string{address, name, command}, args...)
	return fixenv.Cache(e, cacheKey, nil, func() (*fork.BackgroundProcess, error) {
		process := StartProcess(e, name, command, args...)
		ctx, cancel := context.WithTimeout(e.Ctx, startProcessTimeout)
		defer cancel()

		_, port, err := net.SplitHostPort(address)
		if err != nil {
			return nil, err
		}
		e.Logf("Ожидаю, пока %q начнёт слушать порт %s", name, port)
		if err := process.WaitPort(ctx, "tcp", port); err != nil {
			return nil, fmt.Errorf("сервер не начал слушать %s: %w", address, err)
		}
		return process, nil
	})
}

func RestyClient(e *Env, host string) *resty.Client {
	return fixenv.Cache(e, host, nil, func() (*resty.Client, error) {
		return resty.New().SetBaseURL(host).SetRedirectPolicy(resty.NoRedirectPolicy()), nil
	})
}

// ClientForServer starts "ftracker serve" on a free port and returns a client for it.
func ClientForServer(e *Env) *resty.Client {
	address := ServerAddress(e)
	StartProcessWhichListenPort(e, address, "ftracker server", BinaryPath(e), "serve", "-a", address)
	return RestyClient(e, "http://"+address)
}
