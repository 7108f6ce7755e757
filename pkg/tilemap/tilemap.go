// Package tilemap 提供由字符行描述的实心瓦片网格
//
// 每个字符对应一个瓦片，坐标 (col, row) 从左上角开始计数。
// 网格以外的坐标不视为障碍，世界边界由 PhysicsSystem 处理。
package tilemap

import (
	"fmt"
	"math"
)

// TileMap 瓦片地图
type TileMap struct {
	tileSize int
	columns  int
	rows     int
	solid    []bool
}

// New 创建空地图
func New(columns, rows, tileSize int) (*TileMap, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("tile map size should be > 0, got %dx%d", columns, rows)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size should be > 0, got %d", tileSize)
	}
	return &TileMap{
		tileSize: tileSize,
		columns:  columns,
		rows:     rows,
		solid:    make([]bool, columns*rows),
	}, nil
}

// Parse 从字符行解析地图
//
// 参数:
//   - lines: 每个字符串为一行，所有行必须等宽
//   - tileSize: 瓦片边长（像素）
//   - solid: 表示实心瓦片的字符
func Parse(lines []string, tileSize int, solid rune) (*TileMap, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("tile map has no rows")
	}

	// 按 rune 计数，允许地图中出现非 ASCII 的装饰字符
	columns := len([]rune(lines[0]))
	m, err := New(columns, len(lines), tileSize)
	if err != nil {
		return nil, err
	}

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != columns {
			return nil, fmt.Errorf("tile row %d has width %d, expected %d", row, len(runes), columns)
		}
		for col, r := range runes {
			if r == solid {
				m.SetSolid(col, row, true)
			}
		}
	}
	return m, nil
}

// TileSize 瓦片边长（像素）
func (m *TileMap) TileSize() int {
	return m.tileSize
}

// Columns 列数
func (m *TileMap) Columns() int {
	return m.columns
}

// Rows 行数
func (m *TileMap) Rows() int {
	return m.rows
}

// Bounds 地图的像素尺寸
func (m *TileMap) Bounds() (width, height float64) {
	return float64(m.columns * m.tileSize), float64(m.rows * m.tileSize)
}

// InBounds 坐标是否在地图内
func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.columns && row >= 0 && row < m.rows
}

// IsObstacle 瓦片是否为实心；地图外返回 false
func (m *TileMap) IsObstacle(col, row int) bool {
	if !m.InBounds(col, row) {
		return false
	}
	return m.solid[row*m.columns+col]
}

// SetSolid 设置瓦片是否为实心；地图外的坐标被忽略
func (m *TileMap) SetSolid(col, row int, solid bool) {
	if !m.InBounds(col, row) {
		return
	}
	m.solid[row*m.columns+col] = solid
}

// TileAt 像素坐标所在的瓦片坐标（负坐标向下取整）
func (m *TileMap) TileAt(x, y float64) (col, row int) {
	size := float64(m.tileSize)
	return int(math.Floor(x / size)), int(math.Floor(y / size))
}

// TileRect 瓦片的像素矩形
func (m *TileMap) TileRect(col, row int) (x, y, size float64) {
	size = float64(m.tileSize)
	return float64(col) * size, float64(row) * size, size
}

// AnySolid 矩形区域 [left, right) x [top, bottom) 覆盖的瓦片中是否有实心瓦片
//
// 返回:
//   - found: 是否存在实心瓦片
//   - minCol, maxCol, minRow, maxRow: 实心瓦片的列/行范围（仅在 found 时有效）
func (m *TileMap) AnySolid(left, top, right, bottom float64) (found bool, minCol, maxCol, minRow, maxRow int) {
	if right <= left || bottom <= top {
		return false, 0, 0, 0, 0
	}

	startCol, startRow := m.TileAt(left, top)
	endCol, endRow := m.TileAt(math.Nextafter(right, math.Inf(-1)), math.Nextafter(bottom, math.Inf(-1)))

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			if !m.IsObstacle(col, row) {
				continue
			}
			if !found {
				found = true
				minCol, maxCol, minRow, maxRow = col, col, row, row
				continue
			}
			minCol = min(minCol, col)
			maxCol = max(maxCol, col)
			minRow = min(minRow, row)
			maxRow = max(maxRow, row)
		}
	}
	return found, minCol, maxCol, minRow, maxRow
}
