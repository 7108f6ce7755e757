package behavior

import (
	"time"

	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeSprite 测试用精灵，碰撞探测结果由测试直接设置
type fakeSprite struct {
	id     SpriteID
	kind   SpriteKind
	x, y   float64
	vx, vy float64

	hitting map[CollisionDirection]bool
	flags   map[SpriteFlag]bool

	destroyHandlers []func()
	dead            bool
}

func newFakeSprite(id SpriteID, x, y float64) *fakeSprite {
	return &fakeSprite{
		id:      id,
		kind:    "enemy",
		x:       x,
		y:       y,
		hitting: make(map[CollisionDirection]bool),
		flags:   map[SpriteFlag]bool{FlagStayInScreen: true},
	}
}

func (s *fakeSprite) ID() SpriteID                  { return s.id }
func (s *fakeSprite) Kind() SpriteKind              { return s.kind }
func (s *fakeSprite) Image() *ebiten.Image          { return nil }
func (s *fakeSprite) X() float64                    { return s.x }
func (s *fakeSprite) Y() float64                    { return s.y }
func (s *fakeSprite) SetPosition(x, y float64)      { s.x, s.y = x, y }
func (s *fakeSprite) VX() float64                   { return s.vx }
func (s *fakeSprite) VY() float64                   { return s.vy }
func (s *fakeSprite) SetVX(vx float64)              { s.vx = vx }
func (s *fakeSprite) SetVY(vy float64)              { s.vy = vy }
func (s *fakeSprite) SetFlag(f SpriteFlag, on bool) { s.flags[f] = on }
func (s *fakeSprite) OnDestroyed(handler func()) bool {
	if s.dead {
		return false
	}
	s.destroyHandlers = append(s.destroyHandlers, handler)
	return true
}

func (s *fakeSprite) IsHittingTile(direction CollisionDirection) bool {
	return s.hitting[direction]
}

// destroy 模拟宿主销毁精灵，同步触发所有销毁回调
func (s *fakeSprite) destroy() {
	handlers := s.destroyHandlers
	s.destroyHandlers = nil
	s.dead = true
	for _, handler := range handlers {
		handler()
	}
}

// fakeTileMap 测试用瓦片地图，solid 中的格子为实心
type fakeTileMap struct {
	size  int
	solid map[[2]int]bool
}

func newFakeTileMap(size int) *fakeTileMap {
	return &fakeTileMap{size: size, solid: make(map[[2]int]bool)}
}

func (m *fakeTileMap) setSolid(col, row int)        { m.solid[[2]int{col, row}] = true }
func (m *fakeTileMap) IsObstacle(col, row int) bool { return m.solid[[2]int{col, row}] }
func (m *fakeTileMap) TileSize() int                { return m.size }

// fakeFactory 测试用精灵工厂，记录所有生成的精灵
type fakeFactory struct {
	nextID  SpriteID
	spawned []*fakeSprite
}

func (f *fakeFactory) Spawn(template SpriteTemplate) Sprite {
	f.nextID++
	s := newFakeSprite(1000+f.nextID, 0, 0)
	s.kind = template.Kind()
	f.spawned = append(f.spawned, s)
	return s
}

// fakeClock 测试用手动时钟
type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration      { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now += d }

// playRequest 记录一次动画播放请求
type playRequest struct {
	sprite   SpriteID
	clip     string
	interval time.Duration
}

// fakeAnimator 测试用动画播放器
type fakeAnimator struct {
	requests []playRequest
}

func (a *fakeAnimator) PlayLoop(sprite Sprite, clip AnimationClip, interval time.Duration) {
	a.requests = append(a.requests, playRequest{sprite: sprite.ID(), clip: clip.Name, interval: interval})
}

// fakeScheduler 测试用帧调度器
type fakeScheduler struct {
	handlers []func()
}

func (s *fakeScheduler) OnUpdate(handler func()) { s.handlers = append(s.handlers, handler) }

func (s *fakeScheduler) tick() {
	for _, handler := range s.handlers {
		handler()
	}
}

// recordingBehavior 记录调用顺序的行为
type recordingBehavior struct {
	name   string
	result bool
	calls  *[]string
}

func (b *recordingBehavior) Update() bool {
	*b.calls = append(*b.calls, b.name)
	return b.result
}

// newTestEnv 创建带全部协作者的测试环境
func newTestEnv() (Env, *fakeTileMap, *fakeFactory, *fakeClock, *fakeAnimator) {
	tiles := newFakeTileMap(16)
	factory := &fakeFactory{}
	clock := &fakeClock{}
	animator := &fakeAnimator{}
	return Env{Tiles: tiles, Factory: factory, Clock: clock, Animator: animator}, tiles, factory, clock, animator
}

// patternTunables 构造移动模式参数
func patternTunables(vx, vy, gravity float64) config.PatternConfig {
	return config.PatternConfig{VX: vx, VY: vy, Gravity: gravity}
}

// behaviorFunc 以函数实现 Behavior
type behaviorFunc func() bool

func (f behaviorFunc) Update() bool { return f() }
