// Package icons is the closed set of Lucide icons the site can render.
//
// Content tables refer to icons by name; templates render them through the
// inline sprite returned by Sprite so pages never fetch icon assets.
package icons
