package config

// Default is the render layer every entity and renderer uses.
const Default = 0
