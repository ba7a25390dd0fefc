package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"syscall"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/trace"

	authDeliveryHTTP "github.com/shakti7/Price-Optimization-BE/auth/delivery/http"
	accountMySQLRepo "github.com/shakti7/Price-Optimization-BE/auth/repository/account/mysql"
	jwtRepo "github.com/shakti7/Price-Optimization-BE/auth/repository/auth/jwt"
	smtpRepo "github.com/shakti7/Price-Optimization-BE/auth/repository/mail/smtp"
	"github.com/shakti7/Price-Optimization-BE/auth/usecase/account"
	"github.com/shakti7/Price-Optimization-BE/auth/usecase/auth"
	httpKit "github.com/shakti7/Price-Optimization-BE/kit/http"
	httpMiddlewareKit "github.com/shakti7/Price-Optimization-BE/kit/http/middleware"
	loggerKit "github.com/shakti7/Price-Optimization-BE/kit/logger"
	ormKit "github.com/shakti7/Price-Optimization-BE/kit/orm"
	redisKit "github.com/shakti7/Price-Optimization-BE/kit/redis"
	mysqlContainer "github.com/shakti7/Price-Optimization-BE/kit/testing/mysql/container"
	redisContainer "github.com/shakti7/Price-Optimization-BE/kit/testing/redis/container"
	traceKit "github.com/shakti7/Price-Optimization-BE/kit/trace"
	utilKit "github.com/shakti7/Price-Optimization-BE/kit/util"
	productDeliveryHTTP "github.com/shakti7/Price-Optimization-BE/product/delivery/http"
	productMySQLRepo "github.com/shakti7/Price-Optimization-BE/product/repository/mysql"
	"github.com/shakti7/Price-Optimization-BE/product/usecase/product"
)

const (
	systemName = "price-optimization"
)

func main() {
	var (
		serviceName    = utilKit.GetEnvString("SERVICE_NAME", "price-optimization-be")
		env            = utilKit.GetEnvString("ENV", "development")
		addr           = utilKit.GetEnvString("ADDR", ":8080")
		enableTracer   = utilKit.GetEnvBool("ENABLE_TRACER", false)
		enableMetric   = utilKit.GetEnvBool("ENABLE_METRIC", false)
		mysqlURI       = utilKit.GetEnvString("MYSQL_URI", "")
		redisURI       = utilKit.GetEnvString("REDIS_URI", "")
		jwtSecretKey   = utilKit.GetRequireEnvString("JWT_SECRET_KEY")
		smtpServer     = utilKit.GetEnvString("SMTP_SERVER", "smtp.gmail.com")
		smtpPort       = utilKit.GetEnvString("SMTP_PORT", "587")
		emailSender    = utilKit.GetEnvString("EMAIL_SENDER", "")
		emailPassword  = utilKit.GetEnvString("EMAIL_PASSWORD", "")
		backendURL     = utilKit.GetEnvString("BACKEND_URL", "http://localhost:8080")
		frontendURL    = utilKit.GetEnvString("FRONTEND_URL", "http://localhost:3000")
		rateLimitCount = utilKit.GetEnvInt("RATE_LIMIT_COUNT", 100)
		rateLimitSecs  = utilKit.GetEnvInt("RATE_LIMIT_EXPIRY_SECONDS", 60)
	)

	logLevel := loggerKit.InfoLevel
	if env == "development" {
		logLevel = loggerKit.DebugLevel
	}
	logger, err := loggerKit.NewLogger("./go.log", logLevel)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	if mysqlURI == "" {
		mySQLContainer, err := mysqlContainer.CreateMySQL(ctx, filepath.Join(".", "schema.sql"))
		if err != nil {
			panic(err)
		}
		defer mySQLContainer.Terminate(ctx)
		mysqlURI = mySQLContainer.GetURI()

		fmt.Println("testcontainers mysql uri: ", mysqlURI)
	}

	if redisURI == "" {
		redisContainer, err := redisContainer.CreateRedis(ctx)
		if err != nil {
			panic(err)
		}
		defer redisContainer.Terminate(ctx)
		redisURI = redisContainer.GetURI()

		fmt.Println("testcontainers redis uri: ", redisURI)
	}

	ormDB, err := ormKit.CreateDB(ormKit.UseMySQL(mysqlURI))
	if err != nil {
		panic(err)
	}
	redisCache, err := redisKit.CreateCache(redisURI, "", 0)
	if err != nil {
		panic(err)
	}

	rateLimit := utilKit.CreateCacheRateLimit(redisCache, rateLimitCount, rateLimitSecs)

	var tracer trace.Tracer
	if enableTracer {
		tracer, err = traceKit.CreateTracer(ctx, serviceName)
		if err != nil {
			panic(err)
		}
	} else {
		tracer = traceKit.CreateNoOpTracer()
	}

	accountRepo := accountMySQLRepo.CreateAccountRepo(ormDB)
	productRepo := productMySQLRepo.CreateProductRepo(ormDB)
	tokenRepo, err := jwtRepo.CreateTokenRepo(jwtSecretKey)
	if err != nil {
		panic(err)
	}
	verificationMailRepo := smtpRepo.CreateVerificationMailRepo(smtpServer, smtpPort, emailSender, emailPassword, backendURL)

	accountUseCase, err := account.CreateAccountUseCase(accountRepo, verificationMailRepo, logger)
	if err != nil {
		panic(err)
	}
	authUseCase := auth.CreateAuthUseCase(accountRepo, tokenRepo)
	productUseCase := product.CreateProductUseCase(productRepo)

	customMiddleware := endpoint.Chain(
		httpMiddlewareKit.CreateLoggingMiddleware(logger),
		httpMiddlewareKit.CreateRateLimitMiddleware(rateLimit.Pass),
		httpMiddlewareKit.CreateMetrics(systemName, serviceName),
	)
	authMiddleware := httpMiddlewareKit.CreateAuthMiddleware(func(ctx context.Context, token string) (userID int64, err error) {
		account, err := authUseCase.Authorize(token)
		if err != nil {
			return 0, err
		}
		return account.ID, nil
	})

	r := mux.NewRouter()
	options := []httptransport.ServerOption{
		httptransport.ServerBefore(httpKit.CustomBeforeCtx(tracer)),
		httptransport.ServerAfter(httpKit.CustomAfterCtx),
		httptransport.ServerErrorEncoder(httpKit.EncodeHTTPErrorResponse()),
	}

	r.Methods("POST").Path("/api/v1/auth/signup").Handler(
		httptransport.NewServer(
			customMiddleware(authDeliveryHTTP.MakeAccountRegisterEndpoint(accountUseCase)),
			authDeliveryHTTP.DecodeAccountRegisterRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(authDeliveryHTTP.EncodeAccountRegisterResponse),
			options...,
		))
	r.Methods("GET").Path("/api/v1/auth/verify-email/{code}").Handler(
		httptransport.NewServer(
			customMiddleware(authDeliveryHTTP.MakeAuthVerifyEmailEndpoint(authUseCase)),
			authDeliveryHTTP.DecodeAuthVerifyEmailRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(authDeliveryHTTP.EncodeAuthVerifyEmailResponse),
			options...,
		))
	r.Methods("POST").Path("/api/v1/auth/login").Handler(
		httptransport.NewServer(
			customMiddleware(authDeliveryHTTP.MakeAuthLoginEndpoint(authUseCase)),
			authDeliveryHTTP.DecodeAuthLoginRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(authDeliveryHTTP.EncodeAuthLoginResponse),
			options...,
		))
	r.Methods("POST").Path("/api/v1/auth/logout").Handler(
		httptransport.NewServer(
			customMiddleware(authDeliveryHTTP.MakeAuthLogoutEndpoint()),
			authDeliveryHTTP.DecodeAuthLogoutRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(authDeliveryHTTP.EncodeAuthLogoutResponse),
			options...,
		))
	r.Methods("POST").Path("/api/v1/auth/refresh").Handler(
		httptransport.NewServer(
			customMiddleware(authDeliveryHTTP.MakeRefreshAccessTokenEndpoint(authUseCase)),
			authDeliveryHTTP.DecodeRefreshAccessTokenRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(authDeliveryHTTP.EncodeRefreshAccessTokenResponse),
			options...,
		))
	r.Methods("GET").Path("/api/v1/profile").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(authDeliveryHTTP.MakeAccountProfileEndpoint(accountUseCase))),
			authDeliveryHTTP.DecodeAccountProfileRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(authDeliveryHTTP.EncodeAccountProfileResponse),
			options...,
		))
	r.Methods("DELETE").Path("/api/v1/profile").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(authDeliveryHTTP.MakeAccountProfileDeleteEndpoint(accountUseCase))),
			authDeliveryHTTP.DecodeAccountProfileRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(authDeliveryHTTP.EncodeAccountProfileResponse),
			options...,
		))

	r.Methods("POST").Path("/api/v1/product/add").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(productDeliveryHTTP.MakeProductAddEndpoint(productUseCase))),
			productDeliveryHTTP.DecodeProductAddRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(productDeliveryHTTP.EncodeProductAddResponse),
			options...,
		))
	r.Methods("GET").Path("/api/v1/product/dashboard").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(productDeliveryHTTP.MakeProductDashboardEndpoint(productUseCase))),
			productDeliveryHTTP.DecodeProductDashboardRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(productDeliveryHTTP.EncodeProductDashboardResponse),
			options...,
		))
	r.Methods("PATCH").Path("/api/v1/product/update/{productID}").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(productDeliveryHTTP.MakeProductUpdateEndpoint(productUseCase))),
			productDeliveryHTTP.DecodeProductUpdateRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(productDeliveryHTTP.EncodeProductUpdateResponse),
			options...,
		))
	r.Methods("DELETE").Path("/api/v1/product/delete/{productID}").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(productDeliveryHTTP.MakeProductDeleteEndpoint(productUseCase))),
			productDeliveryHTTP.DecodeProductDeleteRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(productDeliveryHTTP.EncodeProductDeleteResponse),
			options...,
		))
	r.Methods("GET").Path("/api/v1/product/last-id").Handler(
		httptransport.NewServer(
			customMiddleware(authMiddleware(productDeliveryHTTP.MakeProductLastIDEndpoint(productUseCase))),
			productDeliveryHTTP.DecodeProductLastIDRequest,
			httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(productDeliveryHTTP.EncodeProductLastIDResponse),
			options...,
		))

	if enableMetric {
		r.Handle("/metrics", promhttp.Handler())
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	httpSrv := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(r),
	}

	g := new(run.Group)
	{
		g.Add(func() error {
			return httpSrv.ListenAndServe()
		}, func(err error) {
			if err != nil {
				logger.Error(err.Error())
			}
			httpSrv.Close()
		})
	}
	{
		g.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))
	}
	if err := g.Run(); err != nil {
		logger.Error(fmt.Sprintf("server stopped, error: %+v", err))
	}
}
