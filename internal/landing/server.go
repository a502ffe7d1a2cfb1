package landing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/payfront/pkg/checkout"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	htmlContentType = "text/html; charset=utf-8"
)

// Run boots the landing service using the supplied configuration.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	handler, err := newHTTPHandler(cfg, logger, newMetrics())
	if err != nil {
		return err
	}
	router := setupRouter(handler)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("payfront listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("network", cfg.Network),
			zap.String("flow_mode", cfg.FlowMode),
			zap.Bool("connect_wallet", cfg.ConnectWallet),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type httpHandler struct {
	logger       *zap.Logger
	metrics      *metrics
	bootstrapper *checkout.Bootstrapper
	cfg          Config
}

func newHTTPHandler(cfg Config, logger *zap.Logger, collector *metrics) (*httpHandler, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, fmt.Errorf("bootstrap settings: %w", err)
	}
	bootstrapper, err := checkout.NewBootstrapper(settings,
		checkout.WithValidationLogger(validationLoggers{zapValidationLogger{logger: logger}, collector}),
		checkout.WithBranchObserver(collector),
	)
	if err != nil {
		return nil, fmt.Errorf("bootstrapper: %w", err)
	}
	return &httpHandler{
		logger:       logger,
		metrics:      collector,
		bootstrapper: bootstrapper,
		cfg:          cfg,
	}, nil
}

func setupRouter(handler *httpHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.requestContext)

	router.GET(routeHealth, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET(routeMetrics, gin.WrapH(handler.metrics.handler()))
	router.GET(routeIndex, handler.handleIndex)
	router.GET(routeSession, handler.handleSession)

	settings := handler.bootstrapper.Settings()
	router.StaticFileFS(settings.Token.Icon, path.Base(settings.Token.Icon), http.FS(iconsFS))
	if settings.FlowMode == checkout.FlowModeTransaction {
		allowWallets := cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:    []string{"Content-Type", "Accept"},
			MaxAge:          12 * time.Hour,
		})
		router.OPTIONS(settings.TransactionRequestPath, allowWallets)
		router.GET(settings.TransactionRequestPath, allowWallets, handler.handleTransactionRequest)
	}

	return router
}

// requestContext tags every request with an id and a request-scoped logger.
func (handler *httpHandler) requestContext(ctx *gin.Context) {
	requestID := strings.TrimSpace(ctx.GetHeader(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.Header(requestIDHeader, requestID)
	requestLogger := handler.logger.With(zap.String("request_id", requestID))
	ctx.Request = ctx.Request.WithContext(withLogger(ctx.Request.Context(), requestLogger))
	ctx.Next()
}

func (handler *httpHandler) bootstrap(ctx *gin.Context) checkout.Branch {
	return handler.bootstrapper.Bootstrap(ctx.Request.Context(), paymentQueryFromRequest(ctx), ctx.Request.Host)
}

func (handler *httpHandler) handleIndex(ctx *gin.Context) {
	branch := handler.bootstrap(ctx)
	var body bytes.Buffer
	if err := renderBranch(branch).Render(ctx.Request.Context(), &body); err != nil {
		loggerFromContext(ctx.Request.Context(), handler.logger).Error("render failed",
			zap.String("state", string(branch.State)),
			zap.Error(err),
		)
		body.Reset()
		if fallbackErr := renderBranch(checkout.Branch{State: checkout.NoSession}).Render(ctx.Request.Context(), &body); fallbackErr != nil {
			ctx.JSON(http.StatusInternalServerError, errorResponse("render_error", "page unavailable"))
			return
		}
	}
	ctx.Data(http.StatusOK, htmlContentType, body.Bytes())
}

func (handler *httpHandler) handleSession(ctx *gin.Context) {
	branch := handler.bootstrap(ctx)
	if !branch.IsPayment() {
		ctx.JSON(http.StatusOK, sessionResponse{State: string(branch.State)})
		return
	}
	payload := branch.Session.Payload()
	ctx.JSON(http.StatusOK, sessionResponse{State: string(branch.State), Session: &payload})
}

// handleTransactionRequest answers the wallet's GET on a transaction-request
// link with the merchant label and an absolute icon URL on the same origin.
func (handler *httpHandler) handleTransactionRequest(ctx *gin.Context) {
	link := handler.bootstrapper.TransactionLink(ctx.Request.Host)
	if link == nil {
		ctx.JSON(http.StatusNotFound, errorResponse("not_found", "transaction requests are disabled"))
		return
	}
	icon := link.ResolveReference(&url.URL{Path: handler.bootstrapper.Settings().Token.Icon})
	ctx.JSON(http.StatusOK, transactionRequestMetadata{
		Label: handler.cfg.MerchantLabel,
		Icon:  icon.String(),
	})
}

// paymentQueryFromRequest captures the raw query; a missing key stays nil.
func paymentQueryFromRequest(ctx *gin.Context) checkout.PaymentQuery {
	return checkout.PaymentQuery{
		Recipient: optionalQuery(ctx, "recipient"),
		Label:     optionalQuery(ctx, "label"),
		Message:   optionalQuery(ctx, "message"),
	}
}

func optionalQuery(ctx *gin.Context, key string) *string {
	value, ok := ctx.GetQuery(key)
	if !ok {
		return nil
	}
	return &value
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

type sessionResponse struct {
	State   string                   `json:"state"`
	Session *checkout.SessionPayload `json:"session,omitempty"`
}

type transactionRequestMetadata struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}
