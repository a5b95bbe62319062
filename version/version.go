package version

// BuildVersion contains the version of the application. Set during build.
var BuildVersion = "change-me"
