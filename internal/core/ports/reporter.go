package ports

import "go.stackforge.dev/stackforge/internal/core/domain"

// Reporter renders a resolved dependency set for inspection without
// materializing anything. It backs the dry-run path.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Report(deps *domain.DependencySet) error
}
