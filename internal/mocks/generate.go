// Package mocks provides generated mock implementations of the gate and repository ports.
//
// This package uses go.uber.org/mock (gomock). To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	roles := mocks.NewMockRoleStore(ctrl)
//	roles.EXPECT().GetRole(gomock.Any(), "user-1").Return(domainauth.RoleHost, nil)
package mocks

// IdentityResolver, RoleStore and ScopedIDResolver from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_mock.go github.com/stayhub/stayhub-web/internal/ports IdentityResolver,RoleStore,ScopedIDResolver

// Repository and cache ports from internal/core.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=core_mock.go github.com/stayhub/stayhub-web/internal/core AccommodationRepository,CacheRepository,HostRepository,InfluencerRepository,NoticeRepository,ReferralRepository,ReservationRepository,ReviewRepository,RoleRepository
