package systems

import (
	"testing"
	"time"

	"github.com/gonewx/sprite-behaviors/pkg/behavior"
	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
	"github.com/gonewx/sprite-behaviors/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestAnimationFrameAdvance(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	id := em.CreateEntity()
	frame1 := ebiten.NewImage(10, 10)
	frame2 := ebiten.NewImage(10, 10)
	frame3 := ebiten.NewImage(10, 10)

	ecs.AddComponent(em, id, &components.AnimationComponent{
		Frames:     []*ebiten.Image{frame1, frame2, frame3},
		FrameSpeed: 0.1,
		IsLooping:  true,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: frame1})

	// deltaTime < FrameSpeed, 不切换帧
	system.Update(0.05)

	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if anim.CurrentFrame != 0 {
		t.Errorf("Expected CurrentFrame=0, got %d", anim.CurrentFrame)
	}

	system.Update(0.06)
	if anim.CurrentFrame != 1 || sprite.Image != frame2 {
		t.Errorf("Expected frame 1, got %d", anim.CurrentFrame)
	}

	system.Update(0.1)
	system.Update(0.1)
	if anim.CurrentFrame != 0 || sprite.Image != frame1 {
		t.Errorf("looping animation should wrap to frame 0, got %d", anim.CurrentFrame)
	}
}

func TestAnimationNonLoopingStopsOnLastFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	id := em.CreateEntity()
	frames := []*ebiten.Image{ebiten.NewImage(4, 4), ebiten.NewImage(4, 4)}
	ecs.AddComponent(em, id, &components.AnimationComponent{Frames: frames, FrameSpeed: 0.1})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: frames[0]})

	for i := 0; i < 5; i++ {
		system.Update(0.1)
	}

	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if !anim.IsFinished || anim.CurrentFrame != 1 {
		t.Errorf("animation should finish on the last frame, got frame %d finished=%v", anim.CurrentFrame, anim.IsFinished)
	}
}

func TestAnimationPlayLoop(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	tpl := entities.NewTemplate("bat", "enemy", 8, 8, colorGray, 'b')
	sprite := entities.NewSprite(em, tpl, "", 0, 0)

	left := behavior.AnimationClip{Name: "fly_left", Frames: []*ebiten.Image{ebiten.NewImage(8, 8), ebiten.NewImage(8, 8)}}
	system.PlayLoop(sprite, left, 250*time.Millisecond)

	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, sprite.EntityID())
	if !ok {
		t.Fatal("PlayLoop should add an AnimationComponent")
	}
	if anim.ClipName != "fly_left" || !anim.IsLooping || anim.FrameSpeed != 0.25 {
		t.Errorf("animation = %+v", anim)
	}
	if sprite.Image() != left.Frames[0] {
		t.Error("sprite image should switch to the first frame")
	}

	// 再次播放替换片段并从第 0 帧开始
	system.Update(0.3)
	right := behavior.AnimationClip{Name: "fly_right", Frames: []*ebiten.Image{ebiten.NewImage(8, 8)}}
	system.PlayLoop(sprite, right, 100*time.Millisecond)

	anim, _ = ecs.GetComponent[*components.AnimationComponent](em, sprite.EntityID())
	if anim.ClipName != "fly_right" || anim.CurrentFrame != 0 {
		t.Errorf("animation = %s frame %d, want fly_right frame 0", anim.ClipName, anim.CurrentFrame)
	}
}

func TestAnimationPlayLoopOnRemovedEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	sprite := entities.NewSprite(em, entities.NewTemplate("bat", "enemy", 8, 8, colorGray, 'b'), "", 0, 0)
	sprite.Destroy()
	em.RemoveMarkedEntities()

	system.PlayLoop(sprite, behavior.AnimationClip{Name: "fly_left"}, time.Second)
	if em.IsAlive(sprite.EntityID()) {
		t.Error("PlayLoop should not resurrect a removed entity")
	}
}
