// fitsimg inspects and copies FITS image files.
package main

func main() {
	Execute()
}
