// Package httpserver wraps net/http with functional options, structured
// logging and graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, Shutdown is called or the listener
// fails. Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown; use errors.Is to tell them apart.
package httpserver
