package figma

// FileResponse represents the complete response from the Figma file API endpoint,
// which is also the shape of a saved JSON export of the file.
// It contains the file metadata, the document tree, published styles and components.
type FileResponse struct {
	Name          string               `json:"name"`
	LastModified  string               `json:"lastModified"`
	ThumbnailURL  string               `json:"thumbnailUrl"`
	Version       string               `json:"version"`
	Document      Node                 `json:"document"`
	Components    map[string]Component `json:"components,omitempty"`
	Styles        map[string]Style     `json:"styles,omitempty"`
	SchemaVersion int                  `json:"schemaVersion"`
}

// ImagesResponse represents the response of the image render endpoint.
// Images maps a node ID to a temporary download URL; a null URL means the node could not be rendered.
type ImagesResponse struct {
	Err    *string           `json:"err"`
	Images map[string]string `json:"images"`
}

// Component represents a Figma component definition with its metadata.
// The description is free text written by the designer.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style represents a published Figma style with its basic properties.
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"styleType"`
}

// Node types used by the token pipeline.
const (
	NodeDocument  = "DOCUMENT"
	NodeCanvas    = "CANVAS"
	NodeFrame     = "FRAME"
	NodeGroup     = "GROUP"
	NodeComponent = "COMPONENT"
	NodeInstance  = "INSTANCE"
	NodeText      = "TEXT"
	NodeRectangle = "RECTANGLE"
)

// Paint and effect types.
const (
	PaintSolid          = "SOLID"
	PaintGradientLinear = "GRADIENT_LINEAR"
	PaintImage          = "IMAGE"

	EffectDropShadow  = "DROP_SHADOW"
	EffectInnerShadow = "INNER_SHADOW"
)

// Node represents a single element in the Figma document tree hierarchy.
//
// The tree is loosely typed: every field except ID, Name and Type may be absent
// depending on the node type. Fields where absence differs from the zero value
// are pointers.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Visible             *bool      `json:"visible,omitempty"`
	Children            []Node     `json:"children,omitempty"`
	Fills               []Paint    `json:"fills,omitempty"`
	Strokes             []Paint    `json:"strokes,omitempty"`
	StrokeWeight        *float64   `json:"strokeWeight,omitempty"`
	CornerRadius        *float64   `json:"cornerRadius,omitempty"`
	Opacity             *float64   `json:"opacity,omitempty"`
	Effects             []Effect   `json:"effects,omitempty"`
	Characters          string     `json:"characters,omitempty"`
	Style               *TypeStyle `json:"style,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// IsVisible reports whether the node is shown. Figma omits the field for visible nodes.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Color represents an RGBA color with float values ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// Opacity, when present, overrides the alpha channel of Color.
type Paint struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *Color   `json:"color,omitempty"`
}

// Effect represents a visual effect applied to a Figma node such as drop shadows or blurs.
type Effect struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Spread  float64 `json:"spread,omitempty"`
	Color   *Color  `json:"color,omitempty"`
	Offset  *Vector `json:"offset,omitempty"`
}

// Vector represents a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents the text styling properties of a TEXT node.
// LetterSpacing is the absolute pixel delta, already resolved by Figma from a percent value.
type TypeStyle struct {
	FontFamily                string   `json:"fontFamily"`
	FontPostScriptName        string   `json:"fontPostScriptName,omitempty"`
	FontWeight                float64  `json:"fontWeight,omitempty"`
	FontSize                  float64  `json:"fontSize,omitempty"`
	LetterSpacing             *float64 `json:"letterSpacing,omitempty"`
	LineHeightPx              float64  `json:"lineHeightPx,omitempty"`
	LineHeightPercent         float64  `json:"lineHeightPercent,omitempty"`
	LineHeightPercentFontSize *float64 `json:"lineHeightPercentFontSize,omitempty"`
	LineHeightUnit            string   `json:"lineHeightUnit,omitempty"`
	TextAlignHorizontal       string   `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical         string   `json:"textAlignVertical,omitempty"`
}

// Rectangle represents a bounding box with position and dimensions.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
