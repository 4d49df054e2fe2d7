package evdev

import "fmt"

// KeyCode identifies one key on the keyboard. Values mirror the KEY_*
// constants from input-event-codes.h; the set is closed, records carrying a
// code outside it fail to decode.
type KeyCode uint16

const (
	KeyReserved         KeyCode = 0
	KeyEsc              KeyCode = 1
	Key1                KeyCode = 2
	Key2                KeyCode = 3
	Key3                KeyCode = 4
	Key4                KeyCode = 5
	Key5                KeyCode = 6
	Key6                KeyCode = 7
	Key7                KeyCode = 8
	Key8                KeyCode = 9
	Key9                KeyCode = 10
	Key0                KeyCode = 11
	KeyMinus            KeyCode = 12
	KeyEqual            KeyCode = 13
	KeyBackspace        KeyCode = 14
	KeyTab              KeyCode = 15
	KeyQ                KeyCode = 16
	KeyW                KeyCode = 17
	KeyE                KeyCode = 18
	KeyR                KeyCode = 19
	KeyT                KeyCode = 20
	KeyY                KeyCode = 21
	KeyU                KeyCode = 22
	KeyI                KeyCode = 23
	KeyO                KeyCode = 24
	KeyP                KeyCode = 25
	KeyLeftBrace        KeyCode = 26
	KeyRightBrace       KeyCode = 27
	KeyEnter            KeyCode = 28
	KeyLeftCtrl         KeyCode = 29
	KeyA                KeyCode = 30
	KeyS                KeyCode = 31
	KeyD                KeyCode = 32
	KeyF                KeyCode = 33
	KeyG                KeyCode = 34
	KeyH                KeyCode = 35
	KeyJ                KeyCode = 36
	KeyK                KeyCode = 37
	KeyL                KeyCode = 38
	KeySemicolon        KeyCode = 39
	KeyApostrophe       KeyCode = 40
	KeyGrave            KeyCode = 41
	KeyLeftShift        KeyCode = 42
	KeyBackslash        KeyCode = 43
	KeyZ                KeyCode = 44
	KeyX                KeyCode = 45
	KeyC                KeyCode = 46
	KeyV                KeyCode = 47
	KeyB                KeyCode = 48
	KeyN                KeyCode = 49
	KeyM                KeyCode = 50
	KeyComma            KeyCode = 51
	KeyDot              KeyCode = 52
	KeySlash            KeyCode = 53
	KeyRightShift       KeyCode = 54
	KeyKpAsterisk       KeyCode = 55
	KeyLeftAlt          KeyCode = 56
	KeySpace            KeyCode = 57
	KeyCapsLock         KeyCode = 58
	KeyF1               KeyCode = 59
	KeyF2               KeyCode = 60
	KeyF3               KeyCode = 61
	KeyF4               KeyCode = 62
	KeyF5               KeyCode = 63
	KeyF6               KeyCode = 64
	KeyF7               KeyCode = 65
	KeyF8               KeyCode = 66
	KeyF9               KeyCode = 67
	KeyF10              KeyCode = 68
	KeyNumLock          KeyCode = 69
	KeyScrollLock       KeyCode = 70
	KeyKp7              KeyCode = 71
	KeyKp8              KeyCode = 72
	KeyKp9              KeyCode = 73
	KeyKpMinus          KeyCode = 74
	KeyKp4              KeyCode = 75
	KeyKp5              KeyCode = 76
	KeyKp6              KeyCode = 77
	KeyKpPlus           KeyCode = 78
	KeyKp1              KeyCode = 79
	KeyKp2              KeyCode = 80
	KeyKp3              KeyCode = 81
	KeyKp0              KeyCode = 82
	KeyKpDot            KeyCode = 83
	KeyZenkakuHankaku   KeyCode = 85
	Key102nd            KeyCode = 86
	KeyF11              KeyCode = 87
	KeyF12              KeyCode = 88
	KeyRo               KeyCode = 89
	KeyKatakana         KeyCode = 90
	KeyHiragana         KeyCode = 91
	KeyHenkan           KeyCode = 92
	KeyKatakanaHiragana KeyCode = 93
	KeyMuhenkan         KeyCode = 94
	KeyKpJpComma        KeyCode = 95
	KeyKpEnter          KeyCode = 96
	KeyRightCtrl        KeyCode = 97
	KeyKpSlash          KeyCode = 98
	KeySysRq            KeyCode = 99
	KeyRightAlt         KeyCode = 100
	KeyLineFeed         KeyCode = 101
	KeyHome             KeyCode = 102
	KeyUp               KeyCode = 103
	KeyPageUp           KeyCode = 104
	KeyLeft             KeyCode = 105
	KeyRight            KeyCode = 106
	KeyEnd              KeyCode = 107
	KeyDown             KeyCode = 108
	KeyPageDown         KeyCode = 109
	KeyInsert           KeyCode = 110
	KeyDelete           KeyCode = 111
	KeyMacro            KeyCode = 112
	KeyMute             KeyCode = 113
	KeyVolumeDown       KeyCode = 114
	KeyVolumeUp         KeyCode = 115
	KeyPower            KeyCode = 116
	KeyKpEqual          KeyCode = 117
	KeyKpPlusMinus      KeyCode = 118
	KeyPause            KeyCode = 119
	KeyScale            KeyCode = 120
	KeyKpComma          KeyCode = 121
	KeyHangeul          KeyCode = 122
	KeyHanja            KeyCode = 123
	KeyYen              KeyCode = 124
	KeyLeftMeta         KeyCode = 125
	KeyRightMeta        KeyCode = 126
	KeyCompose          KeyCode = 127
	KeyStop             KeyCode = 128
	KeyAgain            KeyCode = 129
	KeyProps            KeyCode = 130
	KeyUndo             KeyCode = 131
	KeyFront            KeyCode = 132
	KeyCopy             KeyCode = 133
	KeyOpen             KeyCode = 134
	KeyPaste            KeyCode = 135
	KeyFind             KeyCode = 136
	KeyCut              KeyCode = 137
	KeyHelp             KeyCode = 138
	KeyMenu             KeyCode = 139
	KeyCalc             KeyCode = 140
	KeySetup            KeyCode = 141
	KeySleep            KeyCode = 142
	KeyWakeup           KeyCode = 143
	KeyFile             KeyCode = 144
	KeySendFile         KeyCode = 145
	KeyDeleteFile       KeyCode = 146
	KeyXfer             KeyCode = 147
	KeyProg1            KeyCode = 148
	KeyProg2            KeyCode = 149
	KeyWww              KeyCode = 150
	KeyMsDos            KeyCode = 151
	KeyScreenLock       KeyCode = 152
	KeyRotateDisplay    KeyCode = 153
	KeyCycleWindows     KeyCode = 154
	KeyMail             KeyCode = 155
	KeyBookmarks        KeyCode = 156
	KeyComputer         KeyCode = 157
	KeyBack             KeyCode = 158
	KeyForward          KeyCode = 159
	KeyCloseCd          KeyCode = 160
	KeyEjectCd          KeyCode = 161
	KeyEjectCloseCd     KeyCode = 162
	KeyNextSong         KeyCode = 163
	KeyPlayPause        KeyCode = 164
	KeyPreviousSong     KeyCode = 165
	KeyStopCd           KeyCode = 166
	KeyRecord           KeyCode = 167
	KeyRewind           KeyCode = 168
	KeyPhone            KeyCode = 169
	KeyIso              KeyCode = 170
	KeyConfig           KeyCode = 171
	KeyHomepage         KeyCode = 172
	KeyRefresh          KeyCode = 173
	KeyExit             KeyCode = 174
	KeyMove             KeyCode = 175
	KeyEdit             KeyCode = 176
	KeyScrollUp         KeyCode = 177
	KeyScrollDown       KeyCode = 178
	KeyKpLeftParen      KeyCode = 179
	KeyKpRightParen     KeyCode = 180
	KeyNew              KeyCode = 181
	KeyRedo             KeyCode = 182
	KeyF13              KeyCode = 183
	KeyF14              KeyCode = 184
	KeyF15              KeyCode = 185
	KeyF16              KeyCode = 186
	KeyF17              KeyCode = 187
	KeyF18              KeyCode = 188
	KeyF19              KeyCode = 189
	KeyF20              KeyCode = 190
	KeyF21              KeyCode = 191
	KeyF22              KeyCode = 192
	KeyF23              KeyCode = 193
	KeyF24              KeyCode = 194
	KeyPlayCd           KeyCode = 200
	KeyPauseCd          KeyCode = 201
	KeyProg3            KeyCode = 202
	KeyProg4            KeyCode = 203
	KeyAllApplications  KeyCode = 204
	KeySuspend          KeyCode = 205
	KeyClose            KeyCode = 206
	KeyPlay             KeyCode = 207
	KeyFastForward      KeyCode = 208
	KeyBassBoost        KeyCode = 209
	KeyPrint            KeyCode = 210
	KeyHp               KeyCode = 211
	KeyCamera           KeyCode = 212
	KeySound            KeyCode = 213
	KeyQuestion         KeyCode = 214
	KeyEmail            KeyCode = 215
	KeyChat             KeyCode = 216
	KeySearch           KeyCode = 217
	KeyConnect          KeyCode = 218
	KeyFinance          KeyCode = 219
	KeySport            KeyCode = 220
	KeyShop             KeyCode = 221
	KeyAltErase         KeyCode = 222
	KeyCancel           KeyCode = 223
	KeyBrightnessDown   KeyCode = 224
	KeyBrightnessUp     KeyCode = 225
	KeyMedia            KeyCode = 226
	KeySwitchVideoMode  KeyCode = 227
	KeyKbdIllumToggle   KeyCode = 228
	KeyKbdIllumDown     KeyCode = 229
	KeyKbdIllumUp       KeyCode = 230
	KeySend             KeyCode = 231
	KeyReply            KeyCode = 232
	KeyForwardMail      KeyCode = 233
	KeySave             KeyCode = 234
	KeyDocuments        KeyCode = 235
	KeyBattery          KeyCode = 236
	KeyBluetooth        KeyCode = 237
	KeyWlan             KeyCode = 238
	KeyUwb              KeyCode = 239
	KeyUnknown          KeyCode = 240
	KeyVideoNext        KeyCode = 241
	KeyVideoPrev        KeyCode = 242
	KeyBrightnessCycle  KeyCode = 243
	KeyBrightnessAuto   KeyCode = 244
	KeyDisplayOff       KeyCode = 245
	KeyWwan             KeyCode = 246
	KeyRfkill           KeyCode = 247
	KeyMicMute          KeyCode = 248
)

var keyCodeNames = map[KeyCode]string{
	KeyReserved:         "KEY_RESERVED",
	KeyEsc:              "KEY_ESC",
	Key1:                "KEY_1",
	Key2:                "KEY_2",
	Key3:                "KEY_3",
	Key4:                "KEY_4",
	Key5:                "KEY_5",
	Key6:                "KEY_6",
	Key7:                "KEY_7",
	Key8:                "KEY_8",
	Key9:                "KEY_9",
	Key0:                "KEY_0",
	KeyMinus:            "KEY_MINUS",
	KeyEqual:            "KEY_EQUAL",
	KeyBackspace:        "KEY_BACKSPACE",
	KeyTab:              "KEY_TAB",
	KeyQ:                "KEY_Q",
	KeyW:                "KEY_W",
	KeyE:                "KEY_E",
	KeyR:                "KEY_R",
	KeyT:                "KEY_T",
	KeyY:                "KEY_Y",
	KeyU:                "KEY_U",
	KeyI:                "KEY_I",
	KeyO:                "KEY_O",
	KeyP:                "KEY_P",
	KeyLeftBrace:        "KEY_LEFTBRACE",
	KeyRightBrace:       "KEY_RIGHTBRACE",
	KeyEnter:            "KEY_ENTER",
	KeyLeftCtrl:         "KEY_LEFTCTRL",
	KeyA:                "KEY_A",
	KeyS:                "KEY_S",
	KeyD:                "KEY_D",
	KeyF:                "KEY_F",
	KeyG:                "KEY_G",
	KeyH:                "KEY_H",
	KeyJ:                "KEY_J",
	KeyK:                "KEY_K",
	KeyL:                "KEY_L",
	KeySemicolon:        "KEY_SEMICOLON",
	KeyApostrophe:       "KEY_APOSTROPHE",
	KeyGrave:            "KEY_GRAVE",
	KeyLeftShift:        "KEY_LEFTSHIFT",
	KeyBackslash:        "KEY_BACKSLASH",
	KeyZ:                "KEY_Z",
	KeyX:                "KEY_X",
	KeyC:                "KEY_C",
	KeyV:                "KEY_V",
	KeyB:                "KEY_B",
	KeyN:                "KEY_N",
	KeyM:                "KEY_M",
	KeyComma:            "KEY_COMMA",
	KeyDot:              "KEY_DOT",
	KeySlash:            "KEY_SLASH",
	KeyRightShift:       "KEY_RIGHTSHIFT",
	KeyKpAsterisk:       "KEY_KPASTERISK",
	KeyLeftAlt:          "KEY_LEFTALT",
	KeySpace:            "KEY_SPACE",
	KeyCapsLock:         "KEY_CAPSLOCK",
	KeyF1:               "KEY_F1",
	KeyF2:               "KEY_F2",
	KeyF3:               "KEY_F3",
	KeyF4:               "KEY_F4",
	KeyF5:               "KEY_F5",
	KeyF6:               "KEY_F6",
	KeyF7:               "KEY_F7",
	KeyF8:               "KEY_F8",
	KeyF9:               "KEY_F9",
	KeyF10:              "KEY_F10",
	KeyNumLock:          "KEY_NUMLOCK",
	KeyScrollLock:       "KEY_SCROLLLOCK",
	KeyKp7:              "KEY_KP7",
	KeyKp8:              "KEY_KP8",
	KeyKp9:              "KEY_KP9",
	KeyKpMinus:          "KEY_KPMINUS",
	KeyKp4:              "KEY_KP4",
	KeyKp5:              "KEY_KP5",
	KeyKp6:              "KEY_KP6",
	KeyKpPlus:           "KEY_KPPLUS",
	KeyKp1:              "KEY_KP1",
	KeyKp2:              "KEY_KP2",
	KeyKp3:              "KEY_KP3",
	KeyKp0:              "KEY_KP0",
	KeyKpDot:            "KEY_KPDOT",
	KeyZenkakuHankaku:   "KEY_ZENKAKUHANKAKU",
	Key102nd:            "KEY_102ND",
	KeyF11:              "KEY_F11",
	KeyF12:              "KEY_F12",
	KeyRo:               "KEY_RO",
	KeyKatakana:         "KEY_KATAKANA",
	KeyHiragana:         "KEY_HIRAGANA",
	KeyHenkan:           "KEY_HENKAN",
	KeyKatakanaHiragana: "KEY_KATAKANAHIRAGANA",
	KeyMuhenkan:         "KEY_MUHENKAN",
	KeyKpJpComma:        "KEY_KPJPCOMMA",
	KeyKpEnter:          "KEY_KPENTER",
	KeyRightCtrl:        "KEY_RIGHTCTRL",
	KeyKpSlash:          "KEY_KPSLASH",
	KeySysRq:            "KEY_SYSRQ",
	KeyRightAlt:         "KEY_RIGHTALT",
	KeyLineFeed:         "KEY_LINEFEED",
	KeyHome:             "KEY_HOME",
	KeyUp:               "KEY_UP",
	KeyPageUp:           "KEY_PAGEUP",
	KeyLeft:             "KEY_LEFT",
	KeyRight:            "KEY_RIGHT",
	KeyEnd:              "KEY_END",
	KeyDown:             "KEY_DOWN",
	KeyPageDown:         "KEY_PAGEDOWN",
	KeyInsert:           "KEY_INSERT",
	KeyDelete:           "KEY_DELETE",
	KeyMacro:            "KEY_MACRO",
	KeyMute:             "KEY_MUTE",
	KeyVolumeDown:       "KEY_VOLUMEDOWN",
	KeyVolumeUp:         "KEY_VOLUMEUP",
	KeyPower:            "KEY_POWER",
	KeyKpEqual:          "KEY_KPEQUAL",
	KeyKpPlusMinus:      "KEY_KPPLUSMINUS",
	KeyPause:            "KEY_PAUSE",
	KeyScale:            "KEY_SCALE",
	KeyKpComma:          "KEY_KPCOMMA",
	KeyHangeul:          "KEY_HANGEUL",
	KeyHanja:            "KEY_HANJA",
	KeyYen:              "KEY_YEN",
	KeyLeftMeta:         "KEY_LEFTMETA",
	KeyRightMeta:        "KEY_RIGHTMETA",
	KeyCompose:          "KEY_COMPOSE",
	KeyStop:             "KEY_STOP",
	KeyAgain:            "KEY_AGAIN",
	KeyProps:            "KEY_PROPS",
	KeyUndo:             "KEY_UNDO",
	KeyFront:            "KEY_FRONT",
	KeyCopy:             "KEY_COPY",
	KeyOpen:             "KEY_OPEN",
	KeyPaste:            "KEY_PASTE",
	KeyFind:             "KEY_FIND",
	KeyCut:              "KEY_CUT",
	KeyHelp:             "KEY_HELP",
	KeyMenu:             "KEY_MENU",
	KeyCalc:             "KEY_CALC",
	KeySetup:            "KEY_SETUP",
	KeySleep:            "KEY_SLEEP",
	KeyWakeup:           "KEY_WAKEUP",
	KeyFile:             "KEY_FILE",
	KeySendFile:         "KEY_SENDFILE",
	KeyDeleteFile:       "KEY_DELETEFILE",
	KeyXfer:             "KEY_XFER",
	KeyProg1:            "KEY_PROG1",
	KeyProg2:            "KEY_PROG2",
	KeyWww:              "KEY_WWW",
	KeyMsDos:            "KEY_MSDOS",
	KeyScreenLock:       "KEY_SCREENLOCK",
	KeyRotateDisplay:    "KEY_ROTATE_DISPLAY",
	KeyCycleWindows:     "KEY_CYCLEWINDOWS",
	KeyMail:             "KEY_MAIL",
	KeyBookmarks:        "KEY_BOOKMARKS",
	KeyComputer:         "KEY_COMPUTER",
	KeyBack:             "KEY_BACK",
	KeyForward:          "KEY_FORWARD",
	KeyCloseCd:          "KEY_CLOSECD",
	KeyEjectCd:          "KEY_EJECTCD",
	KeyEjectCloseCd:     "KEY_EJECTCLOSECD",
	KeyNextSong:         "KEY_NEXTSONG",
	KeyPlayPause:        "KEY_PLAYPAUSE",
	KeyPreviousSong:     "KEY_PREVIOUSSONG",
	KeyStopCd:           "KEY_STOPCD",
	KeyRecord:           "KEY_RECORD",
	KeyRewind:           "KEY_REWIND",
	KeyPhone:            "KEY_PHONE",
	KeyIso:              "KEY_ISO",
	KeyConfig:           "KEY_CONFIG",
	KeyHomepage:         "KEY_HOMEPAGE",
	KeyRefresh:          "KEY_REFRESH",
	KeyExit:             "KEY_EXIT",
	KeyMove:             "KEY_MOVE",
	KeyEdit:             "KEY_EDIT",
	KeyScrollUp:         "KEY_SCROLLUP",
	KeyScrollDown:       "KEY_SCROLLDOWN",
	KeyKpLeftParen:      "KEY_KPLEFTPAREN",
	KeyKpRightParen:     "KEY_KPRIGHTPAREN",
	KeyNew:              "KEY_NEW",
	KeyRedo:             "KEY_REDO",
	KeyF13:              "KEY_F13",
	KeyF14:              "KEY_F14",
	KeyF15:              "KEY_F15",
	KeyF16:              "KEY_F16",
	KeyF17:              "KEY_F17",
	KeyF18:              "KEY_F18",
	KeyF19:              "KEY_F19",
	KeyF20:              "KEY_F20",
	KeyF21:              "KEY_F21",
	KeyF22:              "KEY_F22",
	KeyF23:              "KEY_F23",
	KeyF24:              "KEY_F24",
	KeyPlayCd:           "KEY_PLAYCD",
	KeyPauseCd:          "KEY_PAUSECD",
	KeyProg3:            "KEY_PROG3",
	KeyProg4:            "KEY_PROG4",
	KeyAllApplications:  "KEY_ALL_APPLICATIONS",
	KeySuspend:          "KEY_SUSPEND",
	KeyClose:            "KEY_CLOSE",
	KeyPlay:             "KEY_PLAY",
	KeyFastForward:      "KEY_FASTFORWARD",
	KeyBassBoost:        "KEY_BASSBOOST",
	KeyPrint:            "KEY_PRINT",
	KeyHp:               "KEY_HP",
	KeyCamera:           "KEY_CAMERA",
	KeySound:            "KEY_SOUND",
	KeyQuestion:         "KEY_QUESTION",
	KeyEmail:            "KEY_EMAIL",
	KeyChat:             "KEY_CHAT",
	KeySearch:           "KEY_SEARCH",
	KeyConnect:          "KEY_CONNECT",
	KeyFinance:          "KEY_FINANCE",
	KeySport:            "KEY_SPORT",
	KeyShop:             "KEY_SHOP",
	KeyAltErase:         "KEY_ALTERASE",
	KeyCancel:           "KEY_CANCEL",
	KeyBrightnessDown:   "KEY_BRIGHTNESSDOWN",
	KeyBrightnessUp:     "KEY_BRIGHTNESSUP",
	KeyMedia:            "KEY_MEDIA",
	KeySwitchVideoMode:  "KEY_SWITCHVIDEOMODE",
	KeyKbdIllumToggle:   "KEY_KBDILLUMTOGGLE",
	KeyKbdIllumDown:     "KEY_KBDILLUMDOWN",
	KeyKbdIllumUp:       "KEY_KBDILLUMUP",
	KeySend:             "KEY_SEND",
	KeyReply:            "KEY_REPLY",
	KeyForwardMail:      "KEY_FORWARDMAIL",
	KeySave:             "KEY_SAVE",
	KeyDocuments:        "KEY_DOCUMENTS",
	KeyBattery:          "KEY_BATTERY",
	KeyBluetooth:        "KEY_BLUETOOTH",
	KeyWlan:             "KEY_WLAN",
	KeyUwb:              "KEY_UWB",
	KeyUnknown:          "KEY_UNKNOWN",
	KeyVideoNext:        "KEY_VIDEO_NEXT",
	KeyVideoPrev:        "KEY_VIDEO_PREV",
	KeyBrightnessCycle:  "KEY_BRIGHTNESS_CYCLE",
	KeyBrightnessAuto:   "KEY_BRIGHTNESS_AUTO",
	KeyDisplayOff:       "KEY_DISPLAY_OFF",
	KeyWwan:             "KEY_WWAN",
	KeyRfkill:           "KEY_RFKILL",
	KeyMicMute:          "KEY_MICMUTE",
}

// KeyCodeFrom validates a raw code from the kernel against the known table.
func KeyCodeFrom(code uint16) (KeyCode, error) {
	kc := KeyCode(code)
	if _, ok := keyCodeNames[kc]; !ok {
		return 0, InvalidKeyCodeError{Code: code}
	}
	return kc, nil
}

func (kc KeyCode) IsValid() bool {
	_, ok := keyCodeNames[kc]
	return ok
}

func (kc KeyCode) String() string {
	if name, ok := keyCodeNames[kc]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", uint16(kc))
}
