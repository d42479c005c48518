package ui

import (
	"fmt"

	"blocksnake/game"
	"blocksnake/game/entity"
	"blocksnake/game/manager"
	"blocksnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 200 // Maximum number of records to show in graph
	borderPadding = 10  // Padding around game area
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a seventh of the window
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// Draw renders one frame from a snapshot. records feeds the score graph.
func (r *Renderer) Draw(snap game.Snapshot, records []manager.GameRecord) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/45, r.statsPanel/15)
	lineHeight := min(r.screenHeight/35, r.statsPanel/12)

	// The border occupies cells 0..Width and 0..Height
	cols := int32(snap.Grid.Width + 1)
	rows := int32(snap.Grid.Height + 1)

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	r.cellSize = max(1, min(availableWidth/cols, availableHeight/rows))

	r.totalGridWidth = r.cellSize * cols
	r.totalGridHeight = r.cellSize * rows
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	r.drawBlocks(snap.Border)
	for _, wall := range snap.Walls {
		r.drawBlocks(wall)
	}
	r.drawBlock(snap.Fruit)
	r.drawBlocks(snap.Body)
	r.drawBlock(snap.Head)
	r.drawHeading(snap.Head.Pos, snap.Direction)

	r.drawStatus(snap, fontSize)
	r.drawStatsPanel(snap, records, fontSize, lineHeight)
	rl.EndDrawing()
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) drawBlock(b entity.Block) {
	x, y := r.cell(b.Pos)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toColor(b.Color))
}

func (r *Renderer) drawBlocks(blocks []entity.Block) {
	for _, b := range blocks {
		r.drawBlock(b)
	}
}

// drawHeading puts a small triangle on the head pointing where it goes.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	headX, headY := r.cell(head)
	halfCell := r.cellSize / 2

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	default:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

// drawStatus prints the pause and game over banners over the grid.
func (r *Renderer) drawStatus(snap game.Snapshot, fontSize int32) {
	var text string
	switch snap.State {
	case types.Timeout:
		text = "Paused - Enter to resume, Space to restart"
	case types.GameOver:
		text = fmt.Sprintf("Game Over! Score %d - Space to restart", snap.Score)
	default:
		return
	}

	size := fontSize * 2
	textWidth := rl.MeasureText(text, size)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-textWidth)/2,
		r.offsetY+r.totalGridHeight/2-size/2,
		size, rl.White)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, records []manager.GameRecord, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []struct {
		text  string
		color rl.Color
	}{
		{fmt.Sprintf("Score: %d", snap.Score), rl.White},
		{fmt.Sprintf("High: %d", snap.HighScore), rl.Green},
		{fmt.Sprintf("Speed: %.2f", snap.Velocity), rl.White},
		{fmt.Sprintf("Games: %d", snap.GamesPlayed), rl.White},
		{fmt.Sprintf("Avg: %.2f", snap.AverageScore), rl.Green},
		{fmt.Sprintf("Median: %.1f", snap.MedianScore), rl.Green},
		{fmt.Sprintf("Avg time: %.0fs", snap.AverageDuration), rl.White},
		{fmt.Sprintf("State: %s", snap.State), rl.White},
	}
	for _, l := range lines {
		rl.DrawText(l.text, statsX, statsY, fontSize, l.color)
		statsY += lineHeight
	}

	r.drawScoreGraph(statsX, records, fontSize)
}

// drawScoreGraph plots the most recent records, oldest on the left.
func (r *Renderer) drawScoreGraph(graphX int32, records []manager.GameRecord, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	if len(records) > maxScores {
		records = records[len(records)-maxScores:]
	}
	if len(records) < 2 {
		return
	}

	maxScore := 1
	for _, rec := range records {
		maxScore = max(maxScore, rec.MaxScore)
	}

	point := func(i int) (int32, int32) {
		x := graphX + int32(float32(r.graphWidth)*float32(i)/float32(len(records)-1))
		y := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(records[i].AverageScore)/float32(maxScore))
		return x, y
	}

	for i := 1; i < len(records); i++ {
		x1, y1 := point(i - 1)
		x2, y2 := point(i)
		rl.DrawLine(x1, y1, x2, y2, rl.Green)
	}
}
