// Package mocks provides mock implementations of the remote gateway ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	ads := mocks.NewMockAdsGateway(ctrl)
//	ads.EXPECT().List(gomock.Any()).Return(listings, nil)
package mocks

// Generate mocks for the remote resource ports.
// AdsGateway: List, Create, Update, Delete
// SettingsGateway: Get, Save
// Uploader: Upload
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=remote_mock.go github.com/Muhamedyehya/aqar-admin/internal/ports AdsGateway,SettingsGateway,Uploader

// Generate mock for AuthGateway interface from internal/ports package.
// This creates MockAuthGateway with methods for all AuthGateway interface methods:
// Login
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_gateway_mock.go github.com/Muhamedyehya/aqar-admin/internal/ports AuthGateway
