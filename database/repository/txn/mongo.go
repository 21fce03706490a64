package txn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// illegalOperation is returned by standalone servers for transactional commands.
const illegalOperation = 20

// MongoRunner runs steps in a multi-document transaction. On deployments
// without transaction support (standalone mongod) it switches, once and for
// the life of the process, to compensating writes.
type MongoRunner struct {
	client      *mongo.Client
	logger      *zap.Logger
	unsupported atomic.Bool
}

func NewMongoRunner(client *mongo.Client, logger *zap.Logger) *MongoRunner {
	return &MongoRunner{client: client, logger: logger}
}

func (r *MongoRunner) Run(ctx context.Context, steps ...Step) error {
	if r.unsupported.Load() {
		return RunCompensating(ctx, steps...)
	}

	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		for _, s := range steps {
			if err := s.Do(sc); err != nil {
				_ = sc.AbortTransaction(sc)
				return &StepError{Step: s.Name, Err: err}
			}
		}
		return sc.CommitTransaction(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		r.unsupported.Store(true)
		r.logger.Warn("mongo deployment does not support transactions, using compensating writes", zap.Error(err))
		return RunCompensating(ctx, steps...)
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == illegalOperation {
		return true
	}
	return strings.Contains(err.Error(), "Transaction numbers are only allowed")
}
