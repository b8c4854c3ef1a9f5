package middleware

import (
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/rs/zerolog"
)

// StatusRecoder 記下回應狀態碼與寫出的位元組數
type StatusRecoder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *StatusRecoder) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *StatusRecoder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// LoggerMiddleware 為每個請求建立帶 request_id 與 scope 的子 logger, 放進 context 後記錄完成資訊.
// 下游可用 zerolog.Ctx(r.Context()) 取得同一個 logger.
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			reqLogger := logger.With().
				Str("request_id", util.GetRequestIDFromContext(ctx)).
				Str("scope", util.GetIdentityFromContext(ctx).Scope()).
				Logger()

			recoder := &StatusRecoder{ResponseWriter: w}
			next.ServeHTTP(recoder, r.WithContext(reqLogger.WithContext(ctx)))

			status := recoder.Status()
			var event *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				event = reqLogger.Error()
			case status == http.StatusTooManyRequests:
				event = reqLogger.Warn()
			default:
				event = reqLogger.Info()
			}
			event.
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", status).
				Int("bytes", recoder.bytes).
				Dur("elapsed", time.Since(start)).
				Msg("request completed")
		})
	}
}
