//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import "context"

type producer interface {
	Send(ctx context.Context, topic string, key, value []byte) error
}
