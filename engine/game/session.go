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
package game

import (
	"context"
	"time"

	"wwise-ids/ak"
	"wwise-ids/engine"
)

// Session replays a short stretch of play: pick the output device, start the
// music, walk through the regions and fight a little.
type Session struct {
	Engine engine.Engine
	Player engine.GameObject
}

func (s *Session) Steps() []func(context.Context) error {
	player := &PlayerSounds{Engine: s.Engine, GameObject: s.Player}
	music := &Music{Engine: s.Engine, GameObject: engine.GlobalObject}

	return []func(context.Context) error{
		func(ctx context.Context) error { return s.Engine.SetOutputDevice(ctx, ak.AudioDeviceSystem) },
		func(ctx context.Context) error { return s.Engine.SetBusVolume(ctx, ak.BusMusicBus, 0.8) },
		func(ctx context.Context) error { return music.SetRegion(ctx, RegionForest) },
		music.Start,
		func(ctx context.Context) error {
			return s.Engine.PostEvent(ctx, ak.EventPlayAmbience, engine.GlobalObject)
		},
		player.PlayDash,
		player.PlayMelee,
		player.PlayShoot,
		func(ctx context.Context) error { return music.SetRegion(ctx, RegionCave) },
		func(ctx context.Context) error {
			return s.Engine.PostEvent(ctx, ak.EventPlaySongCave, engine.GlobalObject)
		},
		func(ctx context.Context) error { return music.SetRegion(ctx, RegionTree) },
		func(ctx context.Context) error { return StopAll(ctx, s.Engine) },
	}
}

// Run plays the steps repeat times with a pause of interval between rounds.
// A cancelled ctx ends the session with ctx.Err().
func (s *Session) Run(ctx context.Context, repeat int, interval time.Duration) error {
	steps := s.Steps()

	for i := range repeat {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}

		for _, step := range steps {
			if err := step(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}
