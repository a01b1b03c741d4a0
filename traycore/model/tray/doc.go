/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package tray models tray types and the configurations that mount them.
//
// A Tray is a plate type (name and shape). A TrayPlacement puts a Tray in a
// numbered slot at a display rotation. A Configuration groups placements
// under a UUID and a name. All three implement model.Model.
//
// Example configuration in YAML:
//
//	name: Standard 2x96
//	trays:
//	  - order: 1
//	    rotation: 90
//	    tray: {name: 96-well, rows: 8, cols: 12}
//	  - order: 2
//	    rotation: 270
//	    tray: {name: 96-well, rows: 8, cols: 12}
package tray
