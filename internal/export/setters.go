package export

import (
	"fmt"

	"github.com/Faultbox/fireconv/internal/scene"
)

// setter renders one property as a method call. format receives the
// property value and the properties it was read from.
type setter struct {
	method string
	format func(v any, p scene.Properties) (string, bool)
}

var commonSetters = map[string]setter{
	"anchorPoint":           {"setAnchorPoint", formatVec2},
	"cascadeOpacityEnabled": {"setCascadeOpacityEnabled", formatBool},
	"color":                 {"setColor", formatColor},
	"contentSize":           {"setContentSize", formatSize},
	"globalZOrder":          {"setGlobalZOrder", formatNumber},
	"localZOrder":           {"setLocalZOrder", formatNumber},
	"name":                  {"setName", formatString},
	"opacity":               {"setOpacity", formatNumber},
	"opacityModifyRGB":      {"setOpacityModifyRGB", formatBool},
	"position":              {"setPosition", formatVec2},
	"rotationSkewX":         {"setRotationSkewX", formatNumber},
	"rotationSkewY":         {"setRotationSkewY", formatNumber},
	"scaleX":                {"setScaleX", formatNumber},
	"scaleY":                {"setScaleY", formatNumber},
	"skewX":                 {"setSkewX", formatNumber},
	"skewY":                 {"setSkewY", formatNumber},
	"tag":                   {"setTag", formatNumber},
}

// typeSetters holds the setters for type-specific properties. Properties
// consumed by the constructor have no entry.
var typeSetters = map[scene.TypeTag]map[string]setter{
	scene.TypeLabel: {
		"enableWrap": {"enableWrap", formatBool},
		"horizontalAlignment": {"setHorizontalAlignment", formatEnum(map[string]string{
			"Left":   "cocos2d::TextHAlignment::LEFT",
			"Center": "cocos2d::TextHAlignment::CENTER",
			"Right":  "cocos2d::TextHAlignment::RIGHT",
		})},
		"lineHeight": {"setLineHeight", formatNumber},
		"overflowType": {"setOverflow", formatEnum(map[string]string{
			"None":         "cocos2d::Label::Overflow::NONE",
			"Clamp":        "cocos2d::Label::Overflow::CLAMP",
			"Shrink":       "cocos2d::Label::Overflow::SHRINK",
			"ResizeHeight": "cocos2d::Label::Overflow::RESIZE_HEIGHT",
		})},
		"verticalAlignment": {"setVerticalAlignment", formatEnum(map[string]string{
			"Top":    "cocos2d::TextVAlignment::TOP",
			"Center": "cocos2d::TextVAlignment::CENTER",
			"Bottom": "cocos2d::TextVAlignment::BOTTOM",
		})},
	},
	scene.TypeRichText: {
		"fontFilename": {"setFontFace", formatString},
		"fontSize":     {"setFontSize", formatNumber},
		"horizontalAlignment": {"setHorizontalAlignment", formatEnum(map[string]string{
			"Left":   "cocos2d::ui::RichText::HorizontalAlignment::LEFT",
			"Center": "cocos2d::ui::RichText::HorizontalAlignment::CENTER",
			"Right":  "cocos2d::ui::RichText::HorizontalAlignment::RIGHT",
		})},
		"lineHeight": {"setVerticalSpace", formatNumber},
	},
	scene.TypeButton: {
		"ignoreContentAdaptWithSize": {"ignoreContentAdaptWithSize", formatBool},
	},
	scene.TypeEditBox: {
		"fontColor":            {"setFontColor", formatColor},
		"fontSize":             {"setFontSize", formatNumber},
		"inputFlag":            {"setInputFlag", formatEnum(editBoxInputFlags)},
		"inputMode":            {"setInputMode", formatEnum(editBoxInputModes)},
		"maxLength":            {"setMaxLength", formatNumber},
		"placeholder":          {"setPlaceHolder", formatString},
		"placeholderFontColor": {"setPlaceholderFontColor", formatColor},
		"placeholderFontSize":  {"setPlaceholderFontSize", formatNumber},
		"returnType":           {"setReturnType", formatEnum(editBoxReturnTypes)},
		"text":                 {"setText", formatString},
	},
	scene.TypeProgressBar: {
		"percent": {"setPercent", formatNumber},
	},
	scene.TypeScrollView: {
		"backgroundImage":              {"setBackGroundImage", formatPlistImage},
		"backgroundImageColor":         {"setBackGroundImageColor", formatColor},
		"backgroundImageScale9Enabled": {"setBackGroundImageScale9Enabled", formatBool},
		"bounceEnabled":                {"setBounceEnabled", formatBool},
		"direction": {"setDirection", formatEnum(map[string]string{
			"None":       "cocos2d::ui::ScrollView::Direction::NONE",
			"Vertical":   "cocos2d::ui::ScrollView::Direction::VERTICAL",
			"Horizontal": "cocos2d::ui::ScrollView::Direction::HORIZONTAL",
			"Both":       "cocos2d::ui::ScrollView::Direction::BOTH",
		})},
		"innerContainerSize": {"setInnerContainerSize", formatSize},
	},
	scene.TypeSkeleton: {
		"debugBones":       {"setDebugBonesEnabled", formatBool},
		"debugSlots":       {"setDebugSlotsEnabled", formatBool},
		"defaultAnimation": {"setAnimation", formatAnimation},
		"defaultSkin":      {"setSkin", formatString},
	},
}

var editBoxInputModes = map[string]string{
	"Any":          "cocos2d::ui::EditBox::InputMode::ANY",
	"EmailAddress": "cocos2d::ui::EditBox::InputMode::EMAIL_ADDRESS",
	"Numeric":      "cocos2d::ui::EditBox::InputMode::NUMERIC",
	"PhoneNumber":  "cocos2d::ui::EditBox::InputMode::PHONE_NUMBER",
	"URL":          "cocos2d::ui::EditBox::InputMode::URL",
	"Decime":       "cocos2d::ui::EditBox::InputMode::DECIMAL",
	"SingleLine":   "cocos2d::ui::EditBox::InputMode::SINGLE_LINE",
}

var editBoxInputFlags = map[string]string{
	"Password":                 "cocos2d::ui::EditBox::InputFlag::PASSWORD",
	"Sensitive":                "cocos2d::ui::EditBox::InputFlag::SENSITIVE",
	"InitialCapsWord":          "cocos2d::ui::EditBox::InputFlag::INITIAL_CAPS_WORD",
	"InitialCapsSentence":      "cocos2d::ui::EditBox::InputFlag::INITIAL_CAPS_SENTENCE",
	"InitialCapsAllCharacters": "cocos2d::ui::EditBox::InputFlag::INITIAL_CAPS_ALL_CHARACTERS",
	"LowercaseAllCharacters":   "cocos2d::ui::EditBox::InputFlag::LOWERCASE_ALL_CHARACTERS",
}

var editBoxReturnTypes = map[string]string{
	"Default": "cocos2d::ui::EditBox::KeyboardReturnType::DEFAULT",
	"Done":    "cocos2d::ui::EditBox::KeyboardReturnType::DONE",
	"Send":    "cocos2d::ui::EditBox::KeyboardReturnType::SEND",
	"Search":  "cocos2d::ui::EditBox::KeyboardReturnType::SEARCH",
	"Go":      "cocos2d::ui::EditBox::KeyboardReturnType::GO",
}

func formatNumber(v any, _ scene.Properties) (string, bool) {
	switch t := v.(type) {
	case float64:
		return num(t), true
	case int:
		return fmt.Sprint(t), true
	}
	return "", false
}

func formatBool(v any, _ scene.Properties) (string, bool) {
	b, ok := v.(bool)
	if !ok {
		return "", false
	}
	return fmt.Sprint(b), true
}

func formatString(v any, _ scene.Properties) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return cppString(s), true
}

func formatVec2(v any, _ scene.Properties) (string, bool) {
	x, y, ok := pair(v, "x", "y")
	if !ok {
		return "", false
	}
	return fmt.Sprintf("cocos2d::Vec2(%s, %s)", x, y), true
}

func formatSize(v any, _ scene.Properties) (string, bool) {
	w, h, ok := pair(v, "w", "h")
	if !ok {
		return "", false
	}
	return fmt.Sprintf("cocos2d::Size(%s, %s)", w, h), true
}

func formatColor(v any, _ scene.Properties) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	r, okR := formatNumber(m["r"], nil)
	g, okG := formatNumber(m["g"], nil)
	b, okB := formatNumber(m["b"], nil)
	if !okR || !okG || !okB {
		return "", false
	}
	return fmt.Sprintf("cocos2d::Color3B(%s, %s, %s)", r, g, b), true
}

func formatEnum(values map[string]string) func(any, scene.Properties) (string, bool) {
	return func(v any, _ scene.Properties) (string, bool) {
		label, ok := v.(string)
		if !ok {
			return "", false
		}
		out, ok := values[label]
		return out, ok
	}
}

func formatPlistImage(v any, p scene.Properties) (string, bool) {
	s, ok := formatString(v, p)
	if !ok {
		return "", false
	}
	return s + ", " + texturePlist, true
}

// formatAnimation renders setAnimation(track, name, loop).
func formatAnimation(v any, p scene.Properties) (string, bool) {
	name, ok := formatString(v, p)
	if !ok {
		return "", false
	}
	loop, _ := p["loop"].(bool)
	return fmt.Sprintf("0, %s, %t", name, loop), true
}

func pair(v any, a, b string) (string, string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", "", false
	}
	x, okA := formatNumber(m[a], nil)
	y, okB := formatNumber(m[b], nil)
	return x, y, okA && okB
}
