// Package cache implementa la caché de listados de referencia (países,
// fabricantes de POS). Sin Redis configurado se usa Noop.
package cache

import "context"

// Noop caché deshabilitada: nunca encuentra nada y descarta las escrituras.
type Noop struct{}

func (Noop) Get(_ context.Context, _ string, _ any) (bool, error) { return false, nil }

func (Noop) Set(_ context.Context, _ string, _ any) error { return nil }

func (Noop) Delete(_ context.Context, _ ...string) error { return nil }
