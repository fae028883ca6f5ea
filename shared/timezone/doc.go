// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization at startup:
//     err := timezone.Init(cfg.App.Timezone)
//
//  2. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  3. Formatting and parsing in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// Supported timezone formats:
// - Standard IANA names only: "UTC", "Asia/Kolkata", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable.
// Before Init is called every helper works in UTC.
package timezone
