// Command hexctl inspects and patches binary files through a staged changelog.
package main

func main() {
	execute()
}
