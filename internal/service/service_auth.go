// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/zk-vault/internal/config"
	"github.com/MKhiriev/zk-vault/internal/crypto"
	"github.com/MKhiriev/zk-vault/internal/logger"
	"github.com/MKhiriev/zk-vault/internal/store"
	"github.com/MKhiriev/zk-vault/internal/utils"
	"github.com/MKhiriev/zk-vault/models"
)

// dummySecret is hashed once and verified against on logins for unknown
// usernames so that they cost as much as a wrong password.
const dummySecret = "zk-vault-dummy-credential"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and the credential hash
// engine for password records.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies argon2id credential records with the
	// current cost parameters and pepper.
	hasher crypto.CredentialHasher

	// idGenerator issues UUID v7 user ids.
	idGenerator *utils.UUIDGenerator

	// dummyRecord lazily hashes dummySecret with the current settings.
	dummyRecord func() (string, error)

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and CredentialHasher and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.CredentialHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		idGenerator:    utils.NewUUIDGenerator(),
		dummyRecord: sync.OnceValues(func() (string, error) {
			return hasher.Hash([]byte(dummySecret), []byte(dummySecret))
		}),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// RegisterUser creates a new account and signs a session token for it.
//
// The password is hashed bound to the lower-cased username. Returns:
//   - ErrInvalidDataProvided if the hash engine rejects the input.
//   - a wrapped store.ErrUsernameAlreadyExists if the username is taken in
//     any letter case.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		ID:         a.idGenerator.Generate(),
		Username:   request.Username,
		MasterSalt: request.MasterSalt,
		CreatedAt:  time.Now().UTC(),
	}

	record, err := a.hasher.Hash([]byte(request.Password), []byte(user.Identity()))
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidInput) {
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("credential hashing failed")
		return models.AuthResponse{}, fmt.Errorf("credential hashing failed: %w", err)
	}
	user.PasswordHash = record

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(registeredUser)
	if err != nil {
		return models.AuthResponse{}, err
	}

	log.Info().Str("user_id", registeredUser.ID.String()).Msg("user registered")
	return models.AuthResponse{Token: token.SignedString}, nil
}

// Login authenticates an existing user and returns a session token together
// with the stored master salt.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// A correct password checked against a record produced with outdated
// settings triggers a rehash; failing to store it does not fail the login.
// A stored record that cannot be parsed yields ErrMalformedCredentialRecord.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.verifyDummy(ctx, request.Password)
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by username failed")
		return models.AuthResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	password := []byte(request.Password)
	identity := []byte(user.Identity())

	verdict, err := a.hasher.Verify(password, identity, user.PasswordHash)
	if err != nil {
		if errors.Is(err, crypto.ErrMalformedRecord) {
			log.Error().Err(err).Str("user_id", user.ID.String()).Msg("stored credential record is malformed")
			return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrMalformedCredentialRecord, err)
		}
		return models.AuthResponse{}, fmt.Errorf("credential verification failed: %w", err)
	}

	switch verdict {
	case crypto.Match:
	case crypto.MatchButStale:
		a.rehash(ctx, user, password, identity)
	default:
		log.Info().Str("user_id", user.ID.String()).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := a.createToken(user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Token: token.SignedString, MasterSalt: user.MasterSalt}, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// rehash overwrites the stored record of user with one produced by the
// current settings.
func (a *authService) rehash(ctx context.Context, user models.User, password, identity []byte) {
	log := logger.FromContext(ctx)

	record, err := a.hasher.Hash(password, identity)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("rehash of stale credential record failed")
		return
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, user.ID, record); err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("storing rehashed credential record failed")
		return
	}

	log.Info().Str("user_id", user.ID.String()).Msg("stale credential record rehashed")
}

func (a *authService) verifyDummy(ctx context.Context, password string) {
	record, err := a.dummyRecord()
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("dummy credential record unavailable")
		return
	}
	_, _ = a.hasher.Verify([]byte(password), []byte(dummySecret), record)
}
