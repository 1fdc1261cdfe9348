package main

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	logx "app/internal/logger"
	"app/internal/server"
	"app/internal/usecase"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(email string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  email,
		"role": "ADMIN",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envはローカル用。無くても環境変数だけで動く
	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("no .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load config")
	}
	logx.Init(cfg.GoEnv)

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.ProductVariant{},
		&model.Category{},
	); err != nil {
		logx.Fatal().Err(err).Msg("failed to migrate")
	}

	//カートスナップショット用Redis
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid REDIS_URL")
	}
	opts.ReadTimeout = cfg.RedisTimeout
	opts.WriteTimeout = cfg.RedisTimeout
	rdb := redis.NewClient(opts)

	//Repository生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	cartStore := infraRepo.NewCartRedisStore(rdb, cfg.CartTTL)

	//usecaseに渡す部品
	clock := &realClock{}
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), accessTTL: 15 * time.Minute}

	//Usecase生成
	cartUC := usecase.NewCartUsecase(cartStore, productRepo, clock)
	productUC := usecase.NewProductUsecase(productRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	authUC := usecase.NewAuthUsecase(cfg.AdminEmail, cfg.AdminPasswordHash, verifier, issuer, clock)

	//Handler生成
	cartH := handler.NewCartHandler(cartUC, cfg.CartTTL)
	productH := handler.NewProductHandler(productUC)
	categoryH := handler.NewCategoryHandler(categoryUC)
	authH := handler.NewAuthHandler(authUC)
	adminProductH := handler.NewAdminProductHandler(productUC)
	adminCategoryH := handler.NewAdminCategoryHandler(categoryUC)

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, cartH, productH, categoryH, authH, adminProductH, adminCategoryH)

	addr := cfg.Port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logx.Info().Str("addr", addr).Msg("starting api server")
	if err := server.Start(e, addr); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
