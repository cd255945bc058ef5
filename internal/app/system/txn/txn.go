// Package txn wraps multi-document write sequences in a MongoDB
// transaction when the deployment supports one.
//
// Transactions need a replica set or mongos; a standalone server (the
// usual local dev setup) rejects them. WithTransaction detects that
// rejection via IsNotSupported and re-runs the sequence without a
// session, degrading to plain sequential writes.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// WithTransaction runs fn inside a session transaction. fn must use the
// context it is handed for every database call so the operations join
// the session. If the server does not support transactions, fn runs
// once more with the original context and no session.
//
// Errors returned by fn abort the transaction and are returned as-is.
func WithTransaction(ctx context.Context, client *mongo.Client, log *zap.Logger, fn func(ctx context.Context) error) error {
	session, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			return fn(ctx)
		}
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		if log != nil {
			log.Warn("transactions not supported by server, running without one", zap.Error(err))
		}
		return fn(ctx)
	}
	return err
}

// IsNotSupported reports whether the error means the server cannot run
// transactions (standalone deployment) rather than that the transaction
// itself failed.
//
// Detection uses the known server error codes (20 IllegalOperation on
// older servers, 51, 263) plus message heuristics for drivers and
// proxies that wrap the code away.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch cmdErr.Code {
		case 20, 51, 263:
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "replica set"):
		return true
	case strings.Contains(msg, "session") && strings.Contains(msg, "not supported"):
		return true
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "session"):
		return true
	case strings.Contains(msg, "illegal operation"):
		return true
	}
	return false
}
