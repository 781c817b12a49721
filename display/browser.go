// =================================================================================
//
//			wwise-ids - https://www.foxhollow.cc/projects/wwise-ids/
//
//		 wwise-ids is a simple CLI utility for turning the sound bank header
//	  generated by Wwise into Go constants and keeping them honest
//
//		 Copyright (c) 2024 Steve Cross <flip@foxhollow.cc>
//
//			Licensed under the Apache License, Version 2.0 (the "License");
//			you may not use this file except in compliance with the License.
//			You may obtain a copy of the License at
//
//			     http://www.apache.org/licenses/LICENSE-2.0
//
//			Unless required by applicable law or agreed to in writing, software
//			distributed under the License is distributed on an "AS IS" BASIS,
//			WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//			See the License for the specific language governing permissions and
//			limitations under the License.
//
// =================================================================================
package display

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"wwise-ids/display/theme"
	"wwise-ids/model"
	"wwise-ids/reaper"

	"code.rocketnine.space/tslocum/cview"
	"github.com/gdamore/tcell/v2"
)

//
// types
//

// NodeInfo is attached to every tree node as its reference.
type NodeInfo struct {
	Category model.Category
	Path     string
	ID       model.UniqueID
	HasID    bool
}

// Browser shows a table as a tree: categories, then groups, then values.
type Browser struct {
	app             *cview.Application
	shutdownChannel chan bool

	mu         sync.Mutex
	errorCount int

	gridApp  *cview.Grid
	tree     *cview.TreeView
	tvDetail *cview.TextView
	tvLogs   *cview.TextView
}

//
// constructor
//

func NewBrowser() *Browser {
	return &Browser{
		shutdownChannel: make(chan bool, 1),
	}
}

//
// lifecycle management
//

func (b *Browser) Initialize(source string, table *model.Table) {
	b.app = cview.NewApplication()
	defer b.app.HandlePanic()

	b.gridApp = cview.NewGrid()
	b.gridApp.SetColumns(-1)
	b.gridApp.SetRows(-1, 1, 8)
	b.gridApp.SetBorders(true)
	b.gridApp.SetBordersColor(theme.BorderColor)

	root := BuildTree(table)
	root.SetText(fmt.Sprintf("%s (%d identifiers)", source, table.Count()))

	b.tree = cview.NewTreeView()
	b.tree.SetRoot(root)
	b.tree.SetCurrentNode(root)
	b.tree.SetSelectedFunc(func(node *cview.TreeNode) {
		node.SetExpanded(!node.IsExpanded())
	})
	b.tree.SetChangedFunc(b.showDetail)

	b.tvDetail = cview.NewTextView()
	b.tvDetail.SetDynamicColors(true)

	b.tvLogs = cview.NewTextView()
	b.tvLogs.SetDynamicColors(true)

	b.gridApp.AddItem(b.tree, 0, 0, 1, 1, 0, 0, true)
	b.gridApp.AddItem(b.tvDetail, 1, 0, 1, 1, 0, 0, false)
	b.gridApp.AddItem(b.tvLogs, 2, 0, 1, 1, 0, 0, false)

	b.app.SetRoot(b.gridApp, true)
}

func (b *Browser) Start() {
	reaper.Register("browser")

	go func() {
		defer b.app.HandlePanic()

		b.app.SetInputCapture(b.eventHandler)

		if err := b.app.Run(); err != nil {
			slog.Error("Browser failed: " + err.Error())
		}

		b.shutdownChannel <- true
		reaper.Done("browser")
	}()

	go b.executeLoop()
}

func (b *Browser) Shutdown() {
	slog.Debug("Shutting down browser")
	b.app.Stop()
}

func (b *Browser) IsShutdown() bool {
	return len(b.shutdownChannel) > 0
}

//
// UI
//

func (b *Browser) WriteLevelLog(level slog.Level, message string) {
	color := "-"

	if level == slog.LevelWarn {
		color = "#" + theme.YellowRGB
	} else if level == slog.LevelError {
		color = "#" + theme.RedRGB + "::b"
	} else if level == slog.LevelDebug {
		color = "#" + theme.GrayRGB
	}

	b.tvLogs.Write([]byte(fmt.Sprintf("[%s][%s[] [%s[] %s[-:-:-]\n", color, time.Now().Format("2006-01-02 15:04:05"), level.String(), cview.Escape(message))))
}

func (b *Browser) IncrementErrorCount() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.errorCount++
}

//
// tree
//

// BuildTree turns a table into tree nodes without needing a screen. Every
// category is present, so an empty category shows up as a node with no
// children.
func BuildTree(table *model.Table) *cview.TreeNode {
	root := cview.NewTreeNode("identifiers")
	root.SetSelectable(true)

	for _, category := range model.Categories {
		section := table.Section(category)

		categoryNode := cview.NewTreeNode(fmt.Sprintf("%s (%d)", category, len(section.Entries)+len(section.Groups)))
		categoryNode.SetColor(theme.CategoryColor(category))
		categoryNode.SetReference(&NodeInfo{Category: category, Path: category.String()})
		categoryNode.SetExpanded(len(section.Entries)+len(section.Groups) > 0)

		for _, entry := range section.Entries {
			categoryNode.AddChild(leaf(category, category.String()+"::"+entry.Name, entry))
		}

		for _, group := range section.Groups {
			groupPath := category.String() + "::" + group.Name

			groupNode := cview.NewTreeNode(label(group.Name, group.ID))
			groupNode.SetReference(&NodeInfo{Category: category, Path: groupPath, ID: group.ID, HasID: true})
			groupNode.SetExpanded(false)

			for _, value := range group.Values {
				groupNode.AddChild(leaf(category, groupPath+"::"+value.Name, value))
			}

			categoryNode.AddChild(groupNode)
		}

		root.AddChild(categoryNode)
	}

	return root
}

//
// private functions
//

func leaf(category model.Category, path string, entry model.Entry) *cview.TreeNode {
	node := cview.NewTreeNode(label(entry.Name, entry.ID))
	node.SetReference(&NodeInfo{Category: category, Path: path, ID: entry.ID, HasID: true})
	return node
}

func label(name string, id model.UniqueID) string {
	return fmt.Sprintf("%s = %d", name, id)
}

func (b *Browser) showDetail(node *cview.TreeNode) {
	info, ok := node.GetReference().(*NodeInfo)
	if !ok {
		b.tvDetail.SetText("")
		return
	}

	if !info.HasID {
		b.tvDetail.SetText(cview.Escape(info.Path))
		return
	}

	b.tvDetail.SetText(fmt.Sprintf("%s = %dU [#%s](0x%08X)[-]", cview.Escape(info.Path), info.ID, theme.GrayRGB, uint32(info.ID)))
}

func (b *Browser) eventHandler(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		go reaper.Reap()
		return nil
	case tcell.KeyRune:
		if strings.ContainsRune("qQ", event.Rune()) {
			go reaper.Reap()
			return nil
		}
	}

	return event
}

func (b *Browser) executeLoop() {
	defer b.app.HandlePanic()

	for {
		if b.IsShutdown() {
			break
		}

		b.app.QueueUpdateDraw(func() {})
		time.Sleep(100 * time.Millisecond)
	}
}
