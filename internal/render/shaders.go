package render

// Ball vertex shader. The sphere mesh holds unit-sphere coordinates, so one
// attribute serves as both position (scaled and offset per ball) and normal.
const ballVS = `#version 330
uniform mat4 view;
uniform mat4 proj;
uniform vec3 origin;
uniform float radius;
layout(location = 0) in vec3 sphereCoord;
out vec3 fragWorldPos;
out vec3 fragNormal;
void main() {
    vec3 worldPos = radius * sphereCoord + origin;
    fragWorldPos = worldPos;
    fragNormal = sphereCoord;
    gl_Position = proj * view * vec4(worldPos, 1.0);
}
` + "\x00"

// Opaque core pass: base color blended with a mirror reflection sampled from
// the ball's own cubemap.
const ballFS = `#version 330
in vec3 fragWorldPos;
in vec3 fragNormal;
uniform vec3 color;
uniform vec3 eye;
uniform float reflectivity;
uniform samplerCube reflectionMap;
layout(location = 0) out vec4 outColor;
void main() {
    vec3 N = normalize(fragNormal);
    vec3 I = normalize(fragWorldPos - eye);
    vec3 R = reflect(I, N);
    vec3 mirror = texture(reflectionMap, R).rgb;
    outColor = vec4(mix(color, mirror, reflectivity), 1.0);
}
` + "\x00"

// Translucent shell pass: opacity rises toward grazing angles for a
// glass-like rim. Drawn with blending on and depth writes off.
const rimFS = `#version 330
in vec3 fragWorldPos;
in vec3 fragNormal;
uniform vec3 color;
uniform vec3 eye;
layout(location = 0) out vec4 outColor;
void main() {
    vec3 N = normalize(fragNormal);
    vec3 V = normalize(eye - fragWorldPos);
    float grazing = 1.0 - abs(dot(N, V));
    float alpha = pow(grazing, 3.0) * 0.6;
    outColor = vec4(mix(color, vec3(1.0), 0.5), alpha);
}
` + "\x00"

// Skybox: a unit cube around the viewer, sampled by direction. The caller
// strips the view translation and disables depth writes, so the sky always
// sits behind everything drawn after it.
const skyVS = `#version 330
uniform mat4 view;
uniform mat4 proj;
layout(location = 0) in vec3 position;
out vec3 fragDir;
void main() {
    fragDir = position;
    gl_Position = proj * view * vec4(position, 1.0);
}
` + "\x00"

const skyFS = `#version 330
in vec3 fragDir;
uniform samplerCube sky;
layout(location = 0) out vec4 outColor;
void main() {
    outColor = texture(sky, normalize(fragDir));
}
` + "\x00"
