package memory_test

import (
	"testing"

	"github.com/aretw0/hexrune/pkg/adapters/memory"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScene_Components(t *testing.T) {
	scene := memory.NewScene()
	e := scene.Spawn()
	scene.SetName(e, "lamp")
	scene.SetPointLight(e, domain.PointLightComponent{Enabled: true, Intensity: 2})

	assert.True(t, scene.Valid(e))
	assert.False(t, scene.Valid(domain.NullEntity))

	c, ok := scene.Component(e, domain.ComponentName)
	require.True(t, ok)
	assert.Equal(t, "lamp", c.(*domain.NameComponent).Value)

	c, ok = scene.Component(e, domain.ComponentPointLight)
	require.True(t, ok)
	c.(*domain.PointLightComponent).Enabled = false

	c, _ = scene.Component(e, domain.ComponentPointLight)
	assert.False(t, c.(*domain.PointLightComponent).Enabled, "components are shared by pointer")

	_, ok = scene.Component(e, domain.ComponentStaticMesh)
	assert.False(t, ok)
}

func TestScene_Despawn(t *testing.T) {
	scene := memory.NewScene()
	a := scene.Spawn()
	b := scene.Spawn()
	scene.SetStaticMesh(a, 7)

	scene.Despawn(a)
	assert.False(t, scene.Valid(a))
	_, ok := scene.Component(a, domain.ComponentStaticMesh)
	assert.False(t, ok)
	assert.Equal(t, []domain.Entity{b}, scene.Entities())

	scene.SetName(a, "ghost")
	_, ok = scene.Component(a, domain.ComponentName)
	assert.False(t, ok, "dead entities take no components")
}
