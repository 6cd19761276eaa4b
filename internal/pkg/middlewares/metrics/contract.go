//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=metrics_test
package metrics

import "courierqueue/pkg/logger"

type middlewareLogger interface {
	Debug(msg string, fields ...logger.Field)
}
