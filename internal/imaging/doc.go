// Package imaging loads image files and samples pixel colors from them.
//
// All pixel coordinates are 0-based and relative to the top-left corner of
// the image: X increases rightward and Y increases downward. Coordinates passed
// to SampleRGB are offsets from Bounds().Min, so (0,0) is always the top-left
// pixel even for sub-images whose bounds do not start at the origin.
//
// # Color Representation
//
// Every source color model (grayscale, paletted, YCbCr, CMYK, 16-bit and
// premultiplied RGBA) is converted to straight 8-bit RGB before sampling.
// Alpha is dropped after conversion and never blended into the channels.
//
// Colors are formatted as:
//   - Hex: 7-character lowercase format "#rrggbb"
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Supported Formats
//
// PNG, JPEG and GIF from the standard library, plus BMP, TIFF and WebP from
// golang.org/x/image. Any other input fails to decode.
package imaging
