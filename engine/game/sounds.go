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
// Package game holds the game's typed sound calls, written against the
// generated identifier constants. Nothing in the generator imports it, so a
// regeneration that retires a name breaks this package and not the tool.
package game

import (
	"context"
	"errors"

	"wwise-ids/ak"
	"wwise-ids/engine"
	"wwise-ids/model"
)

// PlayerSounds posts the player's combat and movement sounds on the
// player's game object.
type PlayerSounds struct {
	Engine     engine.Engine
	GameObject engine.GameObject
}

func (p *PlayerSounds) PlayMelee(ctx context.Context) error {
	return p.Engine.PostEvent(ctx, ak.EventPlayPlayerMelee, p.GameObject)
}

func (p *PlayerSounds) PlayShoot(ctx context.Context) error {
	return p.Engine.PostEvent(ctx, ak.EventPlayPlayerFire, p.GameObject)
}

func (p *PlayerSounds) PlayDash(ctx context.Context) error {
	return p.Engine.PostEvent(ctx, ak.EventPlayPlayerDash, p.GameObject)
}

type Region int

const (
	RegionCave Region = iota
	RegionForest
	RegionTree
)

var regionSwitches = map[Region]model.UniqueID{
	RegionCave:   ak.SwitchMusicRegionCave,
	RegionForest: ak.SwitchMusicRegionForest,
	RegionTree:   ak.SwitchMusicRegionTree,
}

var ErrUnknownRegion = errors.New("unknown music region")

// Music drives the interactive music: one play event, and a region switch
// that picks which segment is heard.
type Music struct {
	Engine     engine.Engine
	GameObject engine.GameObject
}

func (m *Music) Start(ctx context.Context) error {
	return m.Engine.PostEvent(ctx, ak.EventPlayMusic, m.GameObject)
}

func (m *Music) SetRegion(ctx context.Context, region Region) error {
	value, ok := regionSwitches[region]
	if !ok {
		return ErrUnknownRegion
	}

	return m.Engine.SetSwitch(ctx, ak.SwitchMusicRegionGroup, value, m.GameObject)
}

// StopAll stops every sound playing in the engine.
func StopAll(ctx context.Context, e engine.Engine) error {
	return e.PostEvent(ctx, ak.EventStopAll, engine.GlobalObject)
}
