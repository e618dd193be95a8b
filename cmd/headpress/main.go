// Command headpress serves blog posts from a headless WordPress and imports
// markdown posts into its SQLite mirror.
package main

func main() {
	Execute()
}
