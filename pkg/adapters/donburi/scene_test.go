package donburi_test

import (
	"testing"

	hexdonburi "github.com/aretw0/hexrune/pkg/adapters/donburi"
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var _ ports.Scene = (*hexdonburi.Scene)(nil)

func TestScene_Component(t *testing.T) {
	world := donburi.NewWorld()
	scene := hexdonburi.NewScene(world)

	lamp := world.Create(hexdonburi.Name, hexdonburi.PointLight)
	entry := world.Entry(lamp)
	hexdonburi.Name.SetValue(entry, domain.NameComponent{Value: "lamp"})
	hexdonburi.PointLight.SetValue(entry, domain.PointLightComponent{Enabled: true, Intensity: 3})

	e := hexdonburi.Entity(lamp)
	assert.True(t, scene.Valid(e))

	c, ok := scene.Component(e, domain.ComponentName)
	require.True(t, ok)
	assert.Equal(t, "lamp", c.(*domain.NameComponent).Value)

	c, ok = scene.Component(e, domain.ComponentPointLight)
	require.True(t, ok)
	c.(*domain.PointLightComponent).Enabled = false
	assert.False(t, hexdonburi.PointLight.Get(entry).Enabled, "writes land in world storage")

	_, ok = scene.Component(e, domain.ComponentStaticMesh)
	assert.False(t, ok)
}

func TestScene_InvalidEntity(t *testing.T) {
	world := donburi.NewWorld()
	scene := hexdonburi.NewScene(world)

	gone := world.Create(hexdonburi.Name)
	world.Remove(gone)

	assert.False(t, scene.Valid(hexdonburi.Entity(gone)))
	assert.False(t, scene.Valid(domain.NullEntity))
	_, ok := scene.Component(hexdonburi.Entity(gone), domain.ComponentName)
	assert.False(t, ok)
}

type overlapRecorder struct {
	begins, ends [][2]domain.Entity
}

func (r *overlapRecorder) BeginOverlap(_ ports.Scene, a, b domain.Entity) {
	r.begins = append(r.begins, [2]domain.Entity{a, b})
}

func (r *overlapRecorder) EndOverlap(_ ports.Scene, a, b domain.Entity) {
	r.ends = append(r.ends, [2]domain.Entity{a, b})
}

func TestScene_RouteOverlaps(t *testing.T) {
	world := donburi.NewWorld()
	scene := hexdonburi.NewScene(world)
	rec := &overlapRecorder{}
	scene.RouteOverlaps(rec)

	a := world.Create(hexdonburi.Name)
	b := world.Create(hexdonburi.Name)
	scene.PublishOverlap(a, b, true)
	scene.PublishOverlap(a, b, false)

	assert.Empty(t, rec.begins, "events are queued until processed")
	hexdonburi.OverlapEventType.ProcessEvents(world)

	pair := [2]domain.Entity{hexdonburi.Entity(a), hexdonburi.Entity(b)}
	assert.Equal(t, [][2]domain.Entity{pair}, rec.begins)
	assert.Equal(t, [][2]domain.Entity{pair}, rec.ends)
}

func TestScene_Spawn(t *testing.T) {
	scene := hexdonburi.NewScene(donburi.NewWorld())

	e := scene.Spawn("crate")
	require.True(t, scene.Valid(e))

	c, ok := scene.Component(e, domain.ComponentName)
	require.True(t, ok)
	assert.Equal(t, "crate", c.(*domain.NameComponent).Value)
}
