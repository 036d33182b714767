package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner executa callbacks dentro de uma transação MongoDB (sessão causal).
// Exige replica set; em standalone as operações rodam sem atomicidade e o
// chamador recebe o erro do driver.
type TxRunner struct {
	client *mongo.Client
}

// NewTxRunner constrói o runner com o cliente.
func NewTxRunner(client *mongo.Client) *TxRunner {
	return &TxRunner{client: client}
}

// Run abre uma sessão, executa fn no contexto transacional e faz commit ou
// abort. O ctx passado a fn deve ser usado em todas as operações de dados.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("iniciar sessão: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
