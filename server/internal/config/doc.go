// Package config loads the securipass configuration from config.yaml.
//
// Config fields:
//   - Server.HTTPPort          — port for the web page and JSON API (default 5000)
//   - Server.ShutdownTimeout   — graceful shutdown bound (default 10s)
//   - Server.WSInterval        — WebSocket hub poll interval (default 1s)
//   - Log.Level                — debug | info | warn | error (default info)
//   - Generator.DefaultLength  — length used for missing/invalid requests (default 16)
//   - Generator.MinLength      — shorter requests fall back to DefaultLength (default 8)
//   - Generator.MaxLength      — longer requests are clamped (default 128)
//   - History.Size             — recent passwords kept (default 5)
//   - Tip.Title, Tip.Content   — educational tip on the home page
//
// Load(path) applies defaults before unmarshalling, then validates.
// Watch(ctx, path, onChange) reloads the file whenever it is written.
package config
