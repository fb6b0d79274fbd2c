// Icon bitmaps for the tray, 22x22 RGBA PNGs. The amber disc marks the
// daemon running (warm filter active), the neutral disc marks it stopped.
package tray

var iconActive = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00, 0x16,
	0x08, 0x06, 0x00, 0x00, 0x00, 0xc4, 0xb4, 0x6c, 0x3b, 0x00, 0x00, 0x00,
	0x68, 0x49, 0x44, 0x41, 0x54, 0x78, 0xda, 0x63, 0x60, 0x18, 0x05, 0xc4,
	0x80, 0xff, 0xab, 0x18, 0x2c, 0x80, 0x78, 0x3a, 0x10, 0xdf, 0x04, 0xe2,
	0x5f, 0x50, 0x7c, 0x13, 0x2a, 0x66, 0x41, 0xae, 0xa1, 0x20, 0xcd, 0xff,
	0x09, 0xe0, 0xe9, 0xa4, 0x1a, 0xba, 0x83, 0x08, 0x43, 0x61, 0x78, 0x07,
	0x35, 0x5d, 0x4a, 0x9a, 0xcb, 0xa1, 0x61, 0xfa, 0x9f, 0x4c, 0x6c, 0x41,
	0x6d, 0xd7, 0x12, 0x76, 0x35, 0x34, 0xc6, 0xc9, 0x35, 0xf8, 0x26, 0x3e,
	0x83, 0x7f, 0x51, 0x60, 0xf0, 0xaf, 0x01, 0x31, 0x98, 0x66, 0x41, 0x41,
	0xb3, 0xc8, 0xa3, 0x4d, 0x72, 0xa3, 0x59, 0x06, 0xa1, 0x69, 0x96, 0xa6,
	0x69, 0x21, 0x44, 0xd3, 0x62, 0x73, 0xe4, 0x01, 0x00, 0x03, 0x53, 0x2e,
	0xb3, 0x57, 0xc2, 0x8b, 0x48, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e,
	0x44, 0xae, 0x42, 0x60, 0x82,
}

var iconIdle = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00, 0x16,
	0x08, 0x06, 0x00, 0x00, 0x00, 0xc4, 0xb4, 0x6c, 0x3b, 0x00, 0x00, 0x00,
	0x68, 0x49, 0x44, 0x41, 0x54, 0x78, 0xda, 0x63, 0x60, 0x18, 0x05, 0xc4,
	0x80, 0xd7, 0xaf, 0x5f, 0x5b, 0x00, 0xf1, 0x74, 0x20, 0xbe, 0x09, 0xc4,
	0xbf, 0xa0, 0xf8, 0x26, 0x54, 0xcc, 0x82, 0x5c, 0x43, 0x41, 0x9a, 0xff,
	0x13, 0xc0, 0xd3, 0x49, 0x35, 0x74, 0x07, 0x11, 0x86, 0xc2, 0xf0, 0x0e,
	0x6a, 0xba, 0x94, 0x34, 0x97, 0x43, 0xc3, 0xf4, 0x3f, 0x99, 0xd8, 0x82,
	0xda, 0xae, 0x25, 0xec, 0x6a, 0x68, 0x8c, 0x93, 0x6b, 0xf0, 0x4d, 0x7c,
	0x06, 0xff, 0xa2, 0xc0, 0xe0, 0x5f, 0x03, 0x62, 0x30, 0xcd, 0x82, 0x82,
	0x66, 0x91, 0x47, 0x9b, 0xe4, 0x46, 0xb3, 0x0c, 0x42, 0xd3, 0x2c, 0x4d,
	0xd3, 0x42, 0x88, 0xa6, 0xc5, 0xe6, 0xc8, 0x03, 0x00, 0x4f, 0xf4, 0x1b,
	0x02, 0xc4, 0xa8, 0xdd, 0xde, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e,
	0x44, 0xae, 0x42, 0x60, 0x82,
}
