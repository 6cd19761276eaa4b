//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=webhook_test
package webhook

import (
	"time"

	"github.com/valyala/fasthttp"
)

type client interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}
