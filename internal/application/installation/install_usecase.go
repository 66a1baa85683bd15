package installation

import (
	"context"
	"time"

	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/ports"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/repository"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/config"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/jwt"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/logger"
)

// InstallUseCase flujo de instalación de la app: intercambia el código de
// autorización por un token, guarda las credenciales de la tienda y emite el
// JWT de sesión del panel.
type InstallUseCase struct {
	authorizer ports.PlatformAuthorizer
	stores     repository.StoreRepository
	jwtCfg     config.JWTConfig
	log        *logger.Logger
}

// NewInstallUseCase construye el caso de uso.
func NewInstallUseCase(authorizer ports.PlatformAuthorizer, stores repository.StoreRepository, jwtCfg config.JWTConfig, log *logger.Logger) *InstallUseCase {
	return &InstallUseCase{authorizer: authorizer, stores: stores, jwtCfg: jwtCfg, log: log}
}

// Authorize completa la instalación. Si la plataforma rechaza el código no se
// escribe nada; el upsert de credenciales solo ocurre con token válido.
func (uc *InstallUseCase) Authorize(ctx context.Context, code string) (*dto.InstallResponse, error) {
	token, err := uc.authorizer.Authorize(ctx, code)
	if err != nil {
		return nil, err
	}

	storeID := token.ResolveStoreID()
	now := time.Now()

	var expiresAt *time.Time
	if token.ExpiresIn > 0 {
		t := now.Add(time.Duration(token.ExpiresIn) * time.Second)
		expiresAt = &t
	}

	store := &entity.Store{
		StoreID:        storeID,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiresAt: expiresAt,
		StoreData:      token.Raw,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.stores.Upsert(store); err != nil {
		return nil, err
	}

	uc.log.Info().Str("store_id", storeID).Msg("tienda instalada; credenciales guardadas")

	sessionToken, err := jwt.Generate(uc.jwtCfg.Secret, storeID, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	return &dto.InstallResponse{StoreID: storeID, Token: sessionToken}, nil
}
